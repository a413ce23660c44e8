package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoardDrawsNotes(t *testing.T) {
	notes := []Note{{ID: "a", Title: "Golden", Lyrics: "Golden, golden, golden as I open my eyes", Mood: MoodHappy, Position: Position{X: 2, Y: 1}}}

	lines := renderBoard(notes, 40, 12, renderOptions{}).plain()
	require.Len(t, lines, 12)

	assert.Equal(t, "  +"+strings.Repeat("-", noteWidth-2)+"+", strings.TrimRight(lines[1], " "))
	assert.True(t, strings.HasPrefix(lines[2], "  |♪ Golden "), lines[2])
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[2], " "), "|"), lines[2])
	assert.Contains(t, lines[3], "Golden, golden,")
	assert.Equal(t, "  +"+strings.Repeat("-", noteWidth-2)+"+", strings.TrimRight(lines[noteHeight], " "))
	assert.Empty(t, strings.TrimSpace(lines[noteHeight+1]))
}

func TestRenderBoardPlaceholders(t *testing.T) {
	notes := []Note{{ID: "a", Mood: MoodCozy, YouTubeURL: "https://youtube.com/watch?v=x"}}
	lines := renderBoard(notes, 30, 8, renderOptions{}).plain()

	assert.Contains(t, lines[1], "♪ Song title")
	assert.Contains(t, lines[2], lyricsPlaceholder)
	assert.Contains(t, lines[5], "▶ youtube")
}

func TestRenderBoardPanAndDrag(t *testing.T) {
	notes := []Note{
		{ID: "a", Title: "A", Mood: MoodHappy, Position: Position{X: 0, Y: 0}},
		{ID: "b", Title: "B", Mood: MoodSad, Position: Position{X: 30, Y: 0}},
	}

	panned := renderBoard(notes, 60, 10, renderOptions{panX: 30}).plain()
	assert.True(t, strings.HasPrefix(panned[1], "|♪ B"), panned[1])

	// The dragged note is drawn at its offset, on top, with a heavy border.
	dragged := renderBoard(notes, 60, 10, renderOptions{dragID: "a", dragDX: 25, dragDY: 1}).plain()
	assert.True(t, strings.HasPrefix(dragged[1], strings.Repeat(" ", 25)+"#"), dragged[1])
	assert.Contains(t, dragged[2], "#♪ A")
	assert.NotContains(t, dragged[1], "|♪ B")

	// Past the edge the preview stops where the drop will land.
	bounded := Bounds{MaxX: 10, MaxY: 1}
	clamped := renderBoard(notes, 60, 10, renderOptions{dragID: "a", dragDX: 25, dragDY: 4, bounds: &bounded}).plain()
	assert.True(t, strings.HasPrefix(clamped[2], strings.Repeat(" ", 10)+"#♪ A"), clamped[2])
}

func TestRenderBoardEditing(t *testing.T) {
	notes := []Note{{ID: "a", Title: "Old", Mood: MoodHappy}}
	opts := renderOptions{editID: "a", editField: fieldTitle, editText: "New", editCursor: 1}
	lines := renderBoard(notes, 30, 8, opts).plain()
	assert.Contains(t, lines[1], "♪ N█ew")

	opts.editField = fieldSpotify
	opts.editText = ""
	opts.editCursor = 0
	lines = renderBoard(notes, 30, 8, opts).plain()
	assert.Contains(t, lines[2], "spotify: █")
}

func TestNoteAt(t *testing.T) {
	notes := []Note{
		{ID: "under", Position: Position{X: 0, Y: 0}},
		{ID: "over", Position: Position{X: 10, Y: 2}},
	}

	id, ok := noteAt(notes, 12, 3)
	require.True(t, ok)
	assert.Equal(t, "over", id, "later notes are on top")

	id, ok = noteAt(notes, 1, 1)
	require.True(t, ok)
	assert.Equal(t, "under", id)

	_, ok = noteAt(notes, 100, 100)
	assert.False(t, ok)

	_, ok = noteAt(notes, noteWidth+10, 2)
	assert.False(t, ok, "right edge is exclusive")
}

func TestGridStyledKeepsText(t *testing.T) {
	notes := []Note{{ID: "a", Title: "Golden", Mood: MoodHappy}}
	g := renderBoard(notes, 30, 8, renderOptions{})
	g.putCursor(29, 7)

	styled := g.styled(DefaultPalette())
	require.Len(t, styled, 8)
	assert.Contains(t, styled[1], "Golden")
	assert.Contains(t, styled[7], "█")
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc", fit("abc", 5))
	assert.Equal(t, "abcde", fit("abcdefgh", 5))
	assert.Equal(t, "a b", fit("a\nb", 5))
}
