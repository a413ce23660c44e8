package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	noteWidth    = 22
	noteHeight   = 7
	lyricsLines  = 3
	headerHeight = 1
)

type editField int

const (
	fieldTitle editField = iota
	fieldLyrics
	fieldYouTube
	fieldSpotify
)

func (f editField) String() string {
	switch f {
	case fieldTitle:
		return "title"
	case fieldLyrics:
		return "lyrics"
	case fieldYouTube:
		return "youtube"
	case fieldSpotify:
		return "spotify"
	}
	return ""
}

type cell struct {
	r        rune
	mood     Mood
	selected bool
}

type grid [][]cell

// renderOptions carries the view-only state the board does not own: pan,
// the note in flight with its transient offset, and the edit buffer.
type renderOptions struct {
	panX, panY int
	selectedID string
	dragID     string
	dragDX     int
	dragDY     int
	// bounds clamps the dragged note the same way the drop will.
	bounds     *Bounds
	editID     string
	editField  editField
	editText   string
	editCursor int
}

func noteCell(p Position) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// noteAt returns the top-most note covering the world cell (x, y). Later
// notes are drawn on top, so the search runs backwards.
func noteAt(notes []Note, x, y int) (string, bool) {
	for i := len(notes) - 1; i >= 0; i-- {
		nx, ny := noteCell(notes[i].Position)
		if x >= nx && x < nx+noteWidth && y >= ny && y < ny+noteHeight {
			return notes[i].ID, true
		}
	}
	return "", false
}

func renderBoard(notes []Note, width, height int, opts renderOptions) grid {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	g := make(grid, height)
	for y := range g {
		g[y] = make([]cell, width)
		for x := range g[y] {
			g[y][x] = cell{r: ' '}
		}
	}

	// The dragged note is drawn last so it floats above the others.
	var dragged *Note
	for i := range notes {
		note := notes[i]
		if note.ID == opts.dragID {
			dragged = &notes[i]
			continue
		}
		x, y := noteCell(note.Position)
		g.drawNote(note, x-opts.panX, y-opts.panY, note.ID == opts.selectedID, opts)
	}
	if dragged != nil {
		x, y := noteCell(opts.bounds.Clamp(Position{
			X: dragged.Position.X + float64(opts.dragDX),
			Y: dragged.Position.Y + float64(opts.dragDY),
		}))
		g.drawNote(*dragged, x-opts.panX, y-opts.panY, true, opts)
	}
	return g
}

func (g grid) set(x, y int, r rune, mood Mood, selected bool) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return
	}
	g[y][x] = cell{r: r, mood: mood, selected: selected}
}

func (g grid) drawNote(note Note, noteX, noteY int, isSelected bool, opts renderOptions) {
	// Choose border characters based on selection state
	var corner, horizontal, vertical rune
	if isSelected {
		corner, horizontal, vertical = '#', '#', '#'
	} else {
		corner, horizontal, vertical = '+', '-', '|'
	}

	for y := noteY; y < noteY+noteHeight; y++ {
		for x := noteX; x < noteX+noteWidth; x++ {
			r := ' '
			switch {
			case (y == noteY || y == noteY+noteHeight-1) && (x == noteX || x == noteX+noteWidth-1):
				r = corner
			case y == noteY || y == noteY+noteHeight-1:
				r = horizontal
			case x == noteX || x == noteX+noteWidth-1:
				r = vertical
			}
			g.set(x, y, r, note.Mood, isSelected)
		}
	}

	lines := noteLines(note, opts)
	for i, line := range lines {
		for j, r := range []rune(line) {
			g.set(noteX+1+j, noteY+1+i, r, note.Mood, isSelected)
		}
	}
}

// noteLines lays out the inner rows of a note: title, lyrics, link marker.
func noteLines(note Note, opts renderOptions) []string {
	inner := noteWidth - 2
	editing := opts.editID == note.ID

	title := note.Title
	lyrics := note.Lyrics
	if editing {
		text := withCursor(opts.editText, opts.editCursor)
		switch opts.editField {
		case fieldTitle:
			title = text
		case fieldLyrics:
			lyrics = text
		case fieldYouTube, fieldSpotify:
			lyrics = opts.editField.String() + ": " + text
		}
	}
	if title == "" {
		title = "♪ Song title"
	} else {
		title = "♪ " + title
	}
	if lyrics == "" && !editing {
		lyrics = lyricsPlaceholder
	}

	lines := make([]string, 0, noteHeight-2)
	lines = append(lines, fit(title, inner))

	wrapped := strings.Split(wordwrap.String(lyrics, inner), "\n")
	for i := 0; i < lyricsLines; i++ {
		if i < len(wrapped) {
			lines = append(lines, fit(wrapped[i], inner))
		} else {
			lines = append(lines, "")
		}
	}

	lines = append(lines, fit(linkMarker(note), inner))
	return lines
}

func linkMarker(note Note) string {
	var kinds []string
	if validLink(note.PreviewURL) {
		kinds = append(kinds, "preview")
	}
	if validLink(note.YouTubeURL) {
		kinds = append(kinds, "youtube")
	}
	if validLink(note.SpotifyURL) {
		kinds = append(kinds, "spotify")
	}
	if len(kinds) == 0 {
		return ""
	}
	return "▶ " + strings.Join(kinds, " ")
}

func withCursor(text string, pos int) string {
	runes := []rune(text)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	return string(runes[:pos]) + "█" + string(runes[pos:])
}

func fit(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return truncate.String(s, uint(width))
}

// plain flattens the grid without styling, for TXT export and tests.
func (g grid) plain() []string {
	out := make([]string, len(g))
	for y, row := range g {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		out[y] = b.String()
	}
	return out
}

// styled renders each row with mood colors, grouping runs of equal style.
func (g grid) styled(palette Palette) []string {
	out := make([]string, len(g))
	for y, row := range g {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].mood == row[start].mood && row[x].selected == row[start].selected {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:x] {
				run.WriteRune(c.r)
			}
			b.WriteString(cellStyle(row[start], palette).Render(run.String()))
			start = x
		}
		out[y] = b.String()
	}
	return out
}

func cellStyle(c cell, palette Palette) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.mood == "" {
		return style
	}
	style = style.
		Background(lipgloss.Color(palette.ColorFor(c.mood))).
		Foreground(lipgloss.Color(palette.Border))
	if c.selected {
		style = style.Bold(true)
	}
	return style
}

func (g grid) putCursor(x, y int) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return
	}
	g[y][x].r = '█'
}
