package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func newModel(cfg *Config, board *Board, searcher Searcher, images *ThemeImages, logger *zap.Logger) model {
	if logger == nil {
		logger = zap.NewNop()
	}
	mode := ModeNormal
	if cfg.StartMenu {
		mode = ModeStartup
	}
	return model{
		mode:     mode,
		board:    board,
		config:   cfg,
		logger:   logger,
		searcher: searcher,
		images:   images,
		drags:    make(map[string]*DragController),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case searchResultsMsg:
		return m.handleSearchResults(msg), nil

	case tea.KeyMsg:
		if m.help && m.mode != ModeStartup {
			return m.handleHelpKey(msg), nil
		}
		switch m.mode {
		case ModeStartup:
			return m.handleStartupKey(msg)
		case ModeNormal:
			return m.handleNormalKey(msg)
		case ModeEditing:
			return m.handleEditKey(msg), nil
		case ModeMove:
			return m.handleMoveKey(msg), nil
		case ModeSearch:
			return m.handleSearchKey(msg)
		case ModeSuggest:
			return m.handleSuggestKey(msg), nil
		case ModeFileInput:
			return m.handleFileKey(msg), nil
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		}
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) tea.Model {
	switch msg.String() {
	case "j", "down":
		maxScroll := len(helpLines) - (m.height - 1)
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m
}

func (m model) handleStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.mode = ModeNormal
		m.cursorX, m.cursorY = 0, 0
		return m, nil
	case "o":
		m.fromStartup = true
		m.startFileInput(FileOpOpen)
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Notices are one-shot: they survive until the next key press.
	m.errorMessage = ""
	m.successMessage = ""

	if msg.Type == tea.KeyEscape {
		m.cancelDrag()
		m.zPanMode = false
		m.selectedID = ""
		return m, nil
	}

	key := msg.String()
	if isDirectionKey(key) {
		return m.handleNavigation(key, m.getMoveSpeed(key))
	}

	switch key {
	case "ctrl+c", "q":
		if m.config.Confirmations {
			m.confirm(ConfirmQuit, "")
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "z":
		m.zPanMode = !m.zPanMode
	case "a":
		x, y := m.worldCoords()
		m.addNote(&Position{X: float64(x), Y: float64(y)})
	case "A":
		m.addNote(m.visibleSpot())
	case "1", "2", "3", "4":
		m.board.SetCurrentMood(Moods[int(key[0]-'1')])
	case "t":
		m.board.SetSelectedTheme(m.board.Palette().NextTheme(m.board.SelectedTheme()))
	case "M":
		if id, ok := m.noteUnderCursor(); ok {
			m.cycleNoteMood(id)
		}
	case "e", "enter":
		if id, ok := m.noteUnderCursor(); ok {
			m.startEditing(id)
		}
	case "m":
		if id, ok := m.noteUnderCursor(); ok {
			m.beginDrag(id, 0, 0)
			m.selectedID = id
			m.mode = ModeMove
		}
	case "d":
		if id, ok := m.noteUnderCursor(); ok {
			if m.config.Confirmations {
				m.confirm(ConfirmDeleteNote, id)
			} else {
				m.deleteNote(id)
			}
		}
	case "X":
		if m.board.Len() == 0 {
			return m, nil
		}
		if m.config.Confirmations {
			m.confirm(ConfirmClearAll, "")
		} else {
			m.clearAll()
		}
	case "/":
		m.startSearch()
	case "g":
		m.startSuggest()
	case "o":
		if id, ok := m.noteUnderCursor(); ok {
			m.openNoteLink(id)
		}
	case "y":
		if id, ok := m.noteUnderCursor(); ok {
			m.copyNote(id)
		}
	case "u":
		m.cancelDrag()
		m.undo()
	case "U":
		m.cancelDrag()
		m.redo()
	case "s":
		m.startFileInput(FileOpSave)
	case "S":
		m.startFileInput(FileOpSavePNG)
	case "W":
		m.startFileInput(FileOpSaveVisualTXT)
	case "O":
		m.fromStartup = false
		m.startFileInput(FileOpOpen)
	case "n":
		if m.config.Confirmations && m.board.Len() > 0 {
			m.confirm(ConfirmNewBoard, "")
		} else {
			m.newBoard()
		}
	}
	return m, nil
}

func (m model) handleMoveKey(msg tea.KeyMsg) tea.Model {
	key := msg.String()
	switch {
	case msg.Type == tea.KeyEscape:
		m.cancelDrag()
		m.mode = ModeNormal
		m.selectedID = ""
	case msg.Type == tea.KeyEnter:
		m.commitDrag()
		m.mode = ModeNormal
		m.selectedID = ""
	case isDirectionKey(key):
		if m.dragging == "" {
			m.mode = ModeNormal
			return m
		}
		dx, dy := direction(key)
		speed := float64(m.getMoveSpeed(key))
		m.dragFor(m.dragging).Nudge(float64(dx)*speed, float64(dy)*speed)
	}
	return m
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		action, target := m.confirmAction, m.selectedID
		m.mode = ModeNormal
		m.selectedID = ""
		switch action {
		case ConfirmDeleteNote:
			m.deleteNote(target)
		case ConfirmClearAll:
			m.clearAll()
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewBoard:
			m.newBoard()
		case ConfirmOverwriteFile:
			// Stay in file input if the save fails so the name can be fixed.
			m.mode = ModeFileInput
			m.saveBoard(m.config.GetSavePath(withBoardExt(m.filename)))
		}
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
			return m, nil
		}
		m.mode = ModeNormal
		m.selectedID = ""
	}
	return m, nil
}

func (m *model) confirm(action ConfirmAction, id string) {
	m.cancelDrag()
	m.confirmAction = action
	m.selectedID = id
	m.mode = ModeConfirm
}

func (m *model) addNote(pos *Position) Note {
	note := m.board.AddNote(m.board.CurrentMood(), pos)
	data := NoteData{Note: note, Index: m.board.Len() - 1}
	m.recordAction(ActionAddNote, data, data)
	return note
}

func (m *model) addFromResult(r TrackResult) Note {
	note := m.board.AddNoteFromResult(r, m.visibleSpot())
	data := NoteData{Note: note, Index: m.board.Len() - 1}
	m.recordAction(ActionAddNote, data, data)
	return note
}

func (m *model) addFromSuggestion(s Song) Note {
	note := m.board.AddNoteFromSuggestion(s, m.visibleSpot())
	data := NoteData{Note: note, Index: m.board.Len() - 1}
	m.recordAction(ActionAddNote, data, data)
	return note
}

// visibleSpot picks a random board position where a whole note fits on
// screen at the current pan.
func (m *model) visibleSpot() *Position {
	view := Bounds{
		MinX: float64(m.panX),
		MinY: float64(m.panY),
		MaxX: float64(m.panX + max(m.width-noteWidth, 0)),
		MaxY: float64(m.panY + max(m.canvasHeight()-noteHeight, 0)),
	}
	pos := m.board.RandomPositionWithin(view)
	return &pos
}

func (m *model) deleteNote(id string) {
	index := -1
	var note Note
	for i, n := range m.board.Notes() {
		if n.ID == id {
			index, note = i, n
			break
		}
	}
	if !m.board.DeleteNote(id) {
		return
	}
	data := NoteData{Note: note, Index: index}
	m.recordAction(ActionDeleteNote, data, data)
	m.pruneDrags()
}

func (m *model) clearAll() {
	m.cancelDrag()
	m.board.ClearAll()
	m.resetHistory()
	m.pruneDrags()
	m.successMessage = "Board cleared"
}

func (m *model) newBoard() {
	m.clearAll()
	m.boardFile = ""
	m.panX, m.panY = 0, 0
	m.successMessage = ""
}

func (m *model) cycleNoteMood(id string) {
	before, ok := m.board.Note(id)
	if !ok {
		return
	}
	mood := nextMood(before.Mood)
	m.board.UpdateNote(id, NotePatch{Mood: &mood})
	after, _ := m.board.Note(id)
	m.recordAction(ActionEditNote,
		EditNoteData{ID: id, Before: before, After: after},
		EditNoteData{ID: id, Before: after, After: before})
}

func (m *model) openNoteLink(id string) {
	note, ok := m.board.Note(id)
	if !ok {
		return
	}
	link := note.Link()
	if link == "" {
		if raw := note.rawLink(); raw != "" {
			m.errorMessage = fmt.Sprintf("Can't open %q: not a valid link", raw)
		} else {
			m.errorMessage = "Note has no link"
		}
		return
	}
	if err := openLink(link); err != nil {
		m.logger.Warn("open link failed", zap.String("link", link), zap.Error(err))
		m.errorMessage = "Can't open link: " + err.Error()
		return
	}
	m.successMessage = "Opened " + link
}

func (m *model) copyNote(id string) {
	note, ok := m.board.Note(id)
	if !ok {
		return
	}
	text := clipboardText(note)
	if strings.TrimSpace(text) == "" {
		m.errorMessage = "Nothing to copy"
		return
	}
	if err := writeClipboard(text); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.errorMessage = "Clipboard unavailable"
		return
	}
	m.successMessage = "Copied to clipboard"
}
