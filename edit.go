package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var editFields = []editField{fieldTitle, fieldLyrics, fieldYouTube, fieldSpotify}

func fieldValue(n Note, f editField) string {
	switch f {
	case fieldTitle:
		return n.Title
	case fieldLyrics:
		return n.Lyrics
	case fieldYouTube:
		return n.YouTubeURL
	case fieldSpotify:
		return n.SpotifyURL
	}
	return ""
}

func fieldPatch(f editField, text string) NotePatch {
	switch f {
	case fieldTitle:
		return NotePatch{Title: &text}
	case fieldLyrics:
		return NotePatch{Lyrics: &text}
	case fieldYouTube:
		return NotePatch{YouTubeURL: &text}
	case fieldSpotify:
		return NotePatch{SpotifyURL: &text}
	}
	return NotePatch{}
}

// startEditing makes the note non-interactive for dragging; any gesture
// in flight is dropped first.
func (m *model) startEditing(id string) {
	m.cancelDrag()
	note, ok := m.board.Note(id)
	if !ok {
		return
	}
	m.selectedID = id
	m.editOriginal = note
	m.mode = ModeEditing
	m.loadField(fieldTitle)
}

func (m *model) loadField(f editField) {
	note, _ := m.board.Note(m.selectedID)
	m.editField = f
	m.editText = fieldValue(note, f)
	m.editCursorPos = len([]rune(m.editText))
}

// applyEdit pushes the edit buffer into the board on every keystroke. If
// the note was deleted underneath us the update is a silent no-op.
func (m *model) applyEdit() {
	m.board.UpdateNote(m.selectedID, fieldPatch(m.editField, m.editText))
}

func (m *model) finishEditing() {
	after, ok := m.board.Note(m.selectedID)
	if ok && after != m.editOriginal {
		m.recordAction(ActionEditNote,
			EditNoteData{ID: after.ID, Before: m.editOriginal, After: after},
			EditNoteData{ID: after.ID, Before: after, After: m.editOriginal})
	}
	m.exitEditing()
}

func (m *model) revertEditing() {
	m.board.UpdateNote(m.selectedID, patchFrom(m.editOriginal))
	m.exitEditing()
}

func (m *model) exitEditing() {
	m.mode = ModeNormal
	m.selectedID = ""
	m.editText = ""
	m.editCursorPos = 0
	m.editOriginal = Note{}
}

func (m *model) cycleField(step int) {
	idx := 0
	for i, f := range editFields {
		if f == m.editField {
			idx = i
		}
	}
	idx = (idx + step + len(editFields)) % len(editFields)
	m.loadField(editFields[idx])
}

func (m *model) insertText(s string) {
	runes := []rune(m.editText)
	pos := m.editCursorPos
	if pos > len(runes) {
		pos = len(runes)
	}
	ins := []rune(s)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:pos]...)
	out = append(out, ins...)
	out = append(out, runes[pos:]...)
	m.editText = string(out)
	m.editCursorPos = pos + len(ins)
	m.applyEdit()
}

func (m model) handleEditKey(msg tea.KeyMsg) tea.Model {
	if _, ok := m.board.Note(m.selectedID); !ok {
		// Deleted while editing (undo from elsewhere, reload): nothing left to edit.
		m.exitEditing()
		return m
	}

	runes := []rune(m.editText)
	switch {
	case msg.Type == tea.KeyEscape:
		m.revertEditing()
	case msg.Type == tea.KeyCtrlS:
		m.finishEditing()
	case msg.Type == tea.KeyTab:
		m.cycleField(1)
	case msg.Type == tea.KeyShiftTab:
		m.cycleField(-1)
	case msg.Type == tea.KeyEnter:
		if m.editField == fieldLyrics {
			m.insertText("\n")
		} else {
			m.finishEditing()
		}
	case msg.Type == tea.KeyLeft:
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
	case msg.Type == tea.KeyRight:
		if m.editCursorPos < len(runes) {
			m.editCursorPos++
		}
	case msg.Type == tea.KeyBackspace:
		if m.editCursorPos > 0 && m.editCursorPos <= len(runes) {
			m.editText = string(runes[:m.editCursorPos-1]) + string(runes[m.editCursorPos:])
			m.editCursorPos--
			m.applyEdit()
		}
	case msg.Type == tea.KeyDelete:
		if m.editCursorPos < len(runes) {
			m.editText = string(runes[:m.editCursorPos]) + string(runes[m.editCursorPos+1:])
			m.applyEdit()
		}
	case msg.Type == tea.KeyCtrlV:
		text, err := readClipboardText()
		if err != nil {
			m.logger.Warn("clipboard read failed", zap.Error(err))
			return m
		}
		text = cleanClipboardText(text)
		if m.editField != fieldLyrics {
			text = singleLine(text)
		}
		m.insertText(text)
	case msg.Type == tea.KeySpace:
		m.insertText(" ")
	case msg.Type == tea.KeyRunes:
		m.insertText(string(msg.Runes))
	}
	return m
}
