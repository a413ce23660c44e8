package main

import "go.uber.org/zap"

type model struct {
	width      int
	height     int
	cursorX    int
	cursorY    int
	panX       int
	panY       int
	zPanMode   bool
	mode       Mode
	help       bool
	helpScroll int

	board    *Board
	config   *Config
	logger   *zap.Logger
	searcher Searcher
	images   *ThemeImages

	// One controller per note that has been grabbed; dragging names the
	// note whose gesture is in progress.
	drags    map[string]*DragController
	dragging string

	undoStack []Action
	redoStack []Action

	selectedID    string
	editField     editField
	editText      string
	editCursorPos int
	editOriginal  Note

	searchQuery    string
	searchSeq      int
	searchPending  bool
	searchDone     bool
	searchResults  []TrackResult
	selectedResult int

	suggestions       []Song
	selectedSuggest   int
	boardFile         string
	filename          string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation
	fromStartup       bool

	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type NoteData struct {
	Note  Note
	Index int
}

type EditNoteData struct {
	ID     string
	Before Note
	After  Note
}

type MoveNoteData struct {
	ID   string
	From Position
	To   Position
}
