package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeEditing
	ModeMove
	ModeSearch
	ModeSuggest
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpSaveVisualTXT
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmDeleteNote ConfirmAction = iota
	ConfirmClearAll
	ConfirmQuit
	ConfirmNewBoard
	ConfirmOverwriteFile
)

type ActionType int

const (
	ActionAddNote ActionType = iota
	ActionDeleteNote
	ActionEditNote
	ActionMoveNote
)
