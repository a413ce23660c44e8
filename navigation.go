package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	if m.zPanMode {
		m.handlePan(key, speed)
	} else {
		m.handleCursorMove(key, speed)
	}
	return *m, nil
}

func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
}

func (m *model) handleCursorMove(key string, speed int) {
	dx, dy := direction(key)
	m.cursorX += dx * speed
	m.cursorY += dy * speed
	m.ensureCursorInBounds()
}

func direction(key string) (int, int) {
	switch key {
	case "h", "left", "H", "shift+left":
		return -1, 0
	case "l", "right", "L", "shift+right":
		return 1, 0
	case "k", "up", "K", "shift+up":
		return 0, -1
	case "j", "down", "J", "shift+down":
		return 0, 1
	}
	return 0, 0
}

func isDirectionKey(key string) bool {
	dx, dy := direction(key)
	return dx != 0 || dy != 0
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) canvasHeight() int {
	h := m.height - headerHeight - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if m.height > 0 && m.cursorY >= m.canvasHeight() {
		m.cursorY = m.canvasHeight() - 1
	}
}

func (m *model) worldCoords() (int, int) {
	return m.cursorX + m.panX, m.cursorY + m.panY
}

// screenToWorld maps a terminal cell to board coordinates, accounting for
// the header row and pan offset.
func (m *model) screenToWorld(x, y int) (int, int) {
	return x + m.panX, y - headerHeight + m.panY
}

func (m *model) noteUnderCursor() (string, bool) {
	x, y := m.worldCoords()
	return noteAt(m.board.Notes(), x, y)
}
