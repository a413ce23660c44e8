package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m *model) dragFor(id string) *DragController {
	if m.drags == nil {
		m.drags = make(map[string]*DragController)
	}
	ctrl, ok := m.drags[id]
	if !ok {
		ctrl = NewDragController(id)
		m.drags[id] = ctrl
	}
	return ctrl
}

// pruneDrags forgets controllers whose note left the board.
func (m *model) pruneDrags() {
	for id, ctrl := range m.drags {
		if _, ok := m.board.Note(id); !ok {
			ctrl.Cancel()
			delete(m.drags, id)
		}
	}
	if m.dragging != "" {
		if _, ok := m.drags[m.dragging]; !ok {
			m.dragging = ""
		}
	}
}

func (m *model) beginDrag(id string, x, y float64) {
	m.cancelDrag()
	m.dragFor(id).Begin(x, y)
	m.dragging = id
}

// cancelDrag aborts the gesture in progress, if any, without committing.
func (m *model) cancelDrag() {
	if m.dragging == "" {
		return
	}
	if ctrl, ok := m.drags[m.dragging]; ok {
		ctrl.Cancel()
	}
	m.dragging = ""
}

// commitDrag ends the gesture in progress and records it for undo.
func (m *model) commitDrag() {
	if m.dragging == "" {
		return
	}
	id := m.dragging
	m.dragging = ""
	ctrl, ok := m.drags[id]
	if !ok {
		return
	}
	before, ok := m.board.Note(id)
	if !ok {
		ctrl.Cancel()
		return
	}
	pos, ok := ctrl.End(m.board)
	if !ok || pos == before.Position {
		return
	}
	m.recordAction(ActionMoveNote,
		MoveNoteData{ID: id, From: before.Position, To: pos},
		MoveNoteData{ID: id, From: pos, To: before.Position})
	m.logger.Debug("note moved", zap.String("id", id), zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
}

// dragOffset is the transient offset of the note in flight, in cells.
func (m *model) dragOffset() (string, int, int) {
	if m.dragging == "" {
		return "", 0, 0
	}
	ctrl, ok := m.drags[m.dragging]
	if !ok || !ctrl.Dragging() {
		return "", 0, 0
	}
	dx, dy := ctrl.Offset()
	return m.dragging, int(dx), int(dy)
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal || m.help {
		return m, nil
	}

	switch msg.Type {
	case tea.MouseLeft:
		if m.dragging != "" {
			m.dragFor(m.dragging).Move(float64(msg.X), float64(msg.Y))
			return m, nil
		}
		if msg.Y < headerHeight {
			if mood, ok := moodChipAt(msg.X); ok {
				m.board.SetCurrentMood(mood)
			}
			return m, nil
		}
		m.cursorX, m.cursorY = msg.X, msg.Y-headerHeight
		m.ensureCursorInBounds()
		wx, wy := m.screenToWorld(msg.X, msg.Y)
		if id, ok := noteAt(m.board.Notes(), wx, wy); ok {
			m.beginDrag(id, float64(msg.X), float64(msg.Y))
			m.errorMessage = ""
			m.successMessage = ""
		}
	case tea.MouseMotion:
		if m.dragging != "" {
			m.dragFor(m.dragging).Move(float64(msg.X), float64(msg.Y))
		}
	case tea.MouseRelease:
		if m.dragging != "" {
			m.dragFor(m.dragging).Move(float64(msg.X), float64(msg.Y))
			m.commitDrag()
		}
	case tea.MouseWheelUp:
		m.panY--
	case tea.MouseWheelDown:
		m.panY++
	}
	return m, nil
}
