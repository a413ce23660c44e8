package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const boardTitle = "♪ Hello September"

// moodChipLabel is the header chip for one mood. Active and inactive
// chips have the same width so click targets never shift.
func moodChipLabel(m Mood, active bool) string {
	if active {
		return "[" + strings.ToUpper(string(m)) + "]"
	}
	return " " + strings.ToUpper(string(m)) + " "
}

// moodChipAt maps a header column to the mood chip drawn there.
func moodChipAt(x int) (Mood, bool) {
	col := 0
	for _, mood := range Moods {
		w := len([]rune(moodChipLabel(mood, false)))
		if x >= col && x < col+w {
			return mood, true
		}
		col += w + 1
	}
	return "", false
}

func (m model) renderHeader(width int) string {
	palette := m.board.Palette()
	var b strings.Builder
	for i, mood := range Moods {
		if i > 0 {
			b.WriteString(" ")
		}
		label := moodChipLabel(mood, mood == m.board.CurrentMood())
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(palette.ColorFor(mood))).
			Foreground(lipgloss.Color(palette.Border))
		if mood == m.board.CurrentMood() {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(label))
	}

	theme, _ := palette.Theme(m.board.SelectedTheme())
	info := fmt.Sprintf("  %s | %s | %d songs", boardTitle, theme.Name, m.board.Len())
	if m.boardFile != "" {
		info += " | " + trimBoardExt(m.boardFile)
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		Render(info))
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

func (m model) View() string {
	if m.mode == ModeStartup {
		return m.startupView()
	}
	if m.help {
		return m.helpView()
	}

	renderWidth := m.width
	if renderWidth < 1 {
		renderWidth = 1
	}
	renderHeight := m.canvasHeight()

	var result strings.Builder
	result.WriteString(m.renderHeader(renderWidth))
	result.WriteString("\n")

	switch {
	case m.mode == ModeSearch:
		result.WriteString(m.searchPanel(renderWidth, renderHeight))
	case m.mode == ModeSuggest:
		result.WriteString(m.suggestPanel(renderWidth, renderHeight))
	case m.mode == ModeFileInput && m.fileOp == FileOpOpen:
		result.WriteString(m.filePanel(renderWidth, renderHeight))
	default:
		result.WriteString(strings.Join(m.canvasRows(renderWidth, renderHeight), "\n"))
	}

	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) canvasRows(width, height int) []string {
	opts := renderOptions{panX: m.panX, panY: m.panY, bounds: m.board.Bounds()}
	opts.dragID, opts.dragDX, opts.dragDY = m.dragOffset()
	if m.mode == ModeEditing || m.mode == ModeConfirm {
		opts.selectedID = m.selectedID
	}
	if m.mode == ModeEditing {
		opts.editID = m.selectedID
		opts.editField = m.editField
		opts.editText = m.editText
		opts.editCursor = m.editCursorPos
	}

	g := renderBoard(m.board.Notes(), width, height, opts)
	if m.mode == ModeNormal {
		g.putCursor(m.cursorX, m.cursorY)
	}
	return g.styled(m.board.Palette())
}

func panelLines(title string, width, height int, items []string, selected int) string {
	lines := []string{title, strings.Repeat("─", width)}
	maxItems := height - len(lines)
	if maxItems < 1 {
		maxItems = 1
	}
	start := 0
	if selected >= maxItems {
		start = selected - maxItems + 1
	}
	for i := start; i < len(items) && i < start+maxItems; i++ {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		lines = append(lines, fit(prefix+items[i], width))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m model) searchPanel(width, height int) string {
	title := "Search songs: " + m.searchQuery + "█"
	var items []string
	switch {
	case m.searchPending:
		items = []string{"Searching..."}
		return panelLines(title, width, height, items, -1)
	case m.searchDone && len(m.searchResults) == 0:
		return panelLines(title, width, height, []string{"No results found"}, -1)
	}
	for _, r := range m.searchResults {
		label := r.Label()
		if r.PreviewURL != "" {
			label += "  ▶"
		}
		items = append(items, label)
	}
	return panelLines(title, width, height, items, m.selectedResult)
}

func (m model) suggestPanel(width, height int) string {
	mood := m.board.CurrentMood()
	info := m.board.Palette().MoodInfo[mood]
	title := fmt.Sprintf("%s %s songs: %s", info.Emoji, strings.ToUpper(string(mood)), info.Description)
	if len(m.suggestions) == 0 {
		return panelLines(title, width, height, []string{"No suggestions for this mood"}, -1)
	}
	items := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		items[i] = fmt.Sprintf("%s - %s (%s)", s.Title, s.Artist, s.Genre)
	}
	return panelLines(title, width, height, items, m.selectedSuggest)
}

func (m model) filePanel(width, height int) string {
	if len(m.fileList) == 0 {
		return panelLines("Select a saved board:", width, height, []string{"(No " + boardFileExt + " files found)"}, -1)
	}
	items := make([]string, len(m.fileList))
	for i, f := range m.fileList {
		items[i] = trimBoardExt(f)
	}
	return panelLines("Select a saved board:", width, height, items, m.selectedFileIndex)
}

func (m model) statusLine() string {
	var statusLine string
	switch m.mode {
	case ModeEditing:
		statusLine = fmt.Sprintf("Mode: EDIT | Field: %s | Tab=next field, Ctrl+V=paste, Ctrl+S/Enter=done, Esc=revert", m.editField)
	case ModeMove:
		dx, dy := 0.0, 0.0
		if ctrl, ok := m.drags[m.dragging]; ok {
			dx, dy = ctrl.Offset()
		}
		statusLine = fmt.Sprintf("Mode: MOVE | Offset: (%+d,%+d) | hjkl/arrows=move, Enter=drop, Esc=cancel", int(dx), int(dy))
	case ModeSearch:
		statusLine = "Mode: SEARCH | Type query, Enter=search/add, ↑/↓=select, Esc=back"
	case ModeSuggest:
		statusLine = "Mode: SUGGEST | ↑/↓=select, 1-4=mood, Enter=add, Esc=back"
	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpSave:
			opStr = "Save"
		case FileOpOpen:
			opStr = "Open"
		case FileOpSavePNG:
			opStr = "Export PNG"
		case FileOpSaveVisualTXT:
			opStr = "Export TXT"
		}
		if m.errorMessage != "" {
			statusLine = fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s | Enter=retry, Esc=cancel", m.errorMessage, opStr, m.filename)
		} else {
			statusLine = fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", opStr, m.filename)
		}
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteNote:
			message = "Delete this song? (y/n)"
		case ConfirmClearAll:
			message = fmt.Sprintf("Clear all %d songs? This can't be undone. (y/n)", m.board.Len())
		case ConfirmQuit:
			message = "Quit? (y/n)"
		case ConfirmNewBoard:
			message = "Start a new board? Unsaved changes will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", withBoardExt(m.filename))
		}
		statusLine = "Mode: CONFIRM | " + message
	default:
		modeStr := "NORMAL"
		if m.zPanMode {
			modeStr = "PAN"
		}
		wx, wy := m.worldCoords()
		status := fmt.Sprintf("Mode: %s | Cursor: (%d,%d) | Mood: %s", modeStr, wx, wy, m.board.CurrentMood())
		if m.dragging != "" {
			status += " | Dragging"
		}
		if m.successMessage != "" {
			status += " | " + m.successMessage
		}
		if m.errorMessage != "" {
			status += " | ERROR: " + m.errorMessage
		} else if m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
		statusLine = status
	}
	return statusLine
}

func (m model) startupView() string {
	lines := []string{
		"",
		"  " + boardTitle + " ♪",
		"  a pixel playlist board",
		"",
		"  'n' New board",
		"  'o' Open saved board",
		"  'q' Quit",
	}
	return strings.Join(lines, "\n")
}

var helpLines = []string{
	"Playlist Board Help",
	"===================",
	"",
	"Navigation:",
	"  h/←/j/↓/k/↑/l/→  Move cursor",
	"  Shift+h/j/k/l    Move cursor 2x faster",
	"  z                Toggle pan mode (arrows scroll the board)",
	"  mouse wheel      Scroll the board",
	"",
	"Songs:",
	"  a                Add song at cursor (current mood)",
	"  A                Add song at a random spot",
	"  e / Enter        Edit song under cursor (Tab cycles title, lyrics, links)",
	"  M                Cycle mood of song under cursor",
	"  m                Move song under cursor (Enter drops, Esc cancels)",
	"  drag             Drag a song with the mouse",
	"  d                Delete song under cursor",
	"  X                Clear the whole board (no undo)",
	"  o                Open the song's link",
	"  y                Copy the song's link (or title) to the clipboard",
	"",
	"Moods and themes:",
	"  1-4              happy / cozy / chill / sad",
	"  click a chip     Same, with the mouse",
	"  t                Next theme",
	"",
	"Finding songs:",
	"  /                Search the music catalog",
	"  g                September suggestions for the current mood",
	"",
	"Files:",
	"  s                Save board",
	"  O                Open a saved board",
	"  S                Export PNG",
	"  W                Export visual TXT",
	"  n                New board",
	"",
	"General:",
	"  u / U            Undo / redo",
	"  ?                Toggle this help",
	"  q / Ctrl+C       Quit",
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 {
		visible = len(helpLines)
	}
	start := m.helpScroll
	if start > len(helpLines) {
		start = len(helpLines)
	}
	end := start + visible
	if end > len(helpLines) {
		end = len(helpLines)
	}
	return strings.Join(helpLines[start:end], "\n")
}
