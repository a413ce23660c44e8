package main

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	action := Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	}
	m.undoStack = append(m.undoStack, action)
	m.redoStack = m.redoStack[:0]
}

// resetHistory drops both stacks. Used when the board is cleared or
// replaced, neither of which can be undone.
func (m *model) resetHistory() {
	m.undoStack = nil
	m.redoStack = nil
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	m.applyAction(action.Type, action.Inverse, true)
	m.redoStack = append(m.redoStack, action)
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	m.applyAction(action.Type, action.Data, false)
	m.undoStack = append(m.undoStack, action)
}

func (m *model) applyAction(actionType ActionType, payload interface{}, reverse bool) {
	switch actionType {
	case ActionAddNote:
		data := payload.(NoteData)
		if reverse {
			m.board.DeleteNote(data.Note.ID)
		} else {
			m.board.restoreNote(data.Note, data.Index)
		}
	case ActionDeleteNote:
		data := payload.(NoteData)
		if reverse {
			m.board.restoreNote(data.Note, data.Index)
		} else {
			m.board.DeleteNote(data.Note.ID)
		}
	case ActionEditNote:
		data := payload.(EditNoteData)
		m.board.UpdateNote(data.ID, patchFrom(data.After))
	case ActionMoveNote:
		data := payload.(MoveNoteData)
		to := data.To
		m.board.UpdateNote(data.ID, NotePatch{Position: &to})
	}
	m.pruneDrags()
}
