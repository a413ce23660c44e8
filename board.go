package main

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBoardWidth  = 300
	defaultBoardHeight = 500

	lyricsPlaceholder = "✎ Add lyrics..."
)

type BoardOptions struct {
	Palette      Palette
	Bounds       *Bounds
	DefaultMood  Mood
	DefaultTheme ThemeKey
	// IDs generates note ids. Defaults to random UUIDs.
	IDs  func() string
	Rand *rand.Rand
}

// Board owns the note collection and the mood/theme selection. It is
// driven from the single bubbletea update loop and does no locking.
type Board struct {
	palette       Palette
	bounds        *Bounds
	notes         []Note
	currentMood   Mood
	selectedTheme ThemeKey
	ids           func() string
	rng           *rand.Rand
}

func NewBoard(opts BoardOptions) *Board {
	if len(opts.Palette.Themes) == 0 && len(opts.Palette.MoodColors) == 0 {
		opts.Palette = DefaultPalette()
	}
	b := &Board{
		palette:     opts.Palette,
		bounds:      opts.Bounds,
		notes:       make([]Note, 0),
		currentMood: MoodCozy,
		ids:         opts.IDs,
		rng:         opts.Rand,
	}
	if b.ids == nil {
		b.ids = uuid.NewString
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.DefaultMood.Valid() {
		b.currentMood = opts.DefaultMood
	}
	if b.palette.HasTheme(opts.DefaultTheme) {
		b.selectedTheme = opts.DefaultTheme
	} else if len(b.palette.Themes) > 0 {
		b.selectedTheme = b.palette.Themes[0].Key
	}
	return b
}

func (b *Board) Palette() Palette {
	return b.palette
}

func (b *Board) Bounds() *Bounds {
	return b.bounds
}

func (b *Board) CurrentMood() Mood {
	return b.currentMood
}

func (b *Board) SelectedTheme() ThemeKey {
	return b.selectedTheme
}

func (b *Board) Len() int {
	return len(b.notes)
}

// Notes returns a copy of the collection in insertion order.
func (b *Board) Notes() []Note {
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

func (b *Board) NotesByMood(m Mood) []Note {
	var out []Note
	for _, note := range b.notes {
		if note.Mood == m {
			out = append(out, note)
		}
	}
	return out
}

func (b *Board) Note(id string) (Note, bool) {
	if i := b.indexOf(id); i >= 0 {
		return b.notes[i], true
	}
	return Note{}, false
}

func (b *Board) indexOf(id string) int {
	for i, note := range b.notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}

// AddNote appends an empty note. An invalid mood falls back to the current
// mood; a nil position is replaced with a random spot on the board.
func (b *Board) AddNote(mood Mood, pos *Position) Note {
	if !mood.Valid() {
		mood = b.currentMood
	}
	note := Note{
		ID:       b.newID(),
		Mood:     mood,
		Position: b.placement(pos),
	}
	b.notes = append(b.notes, note)
	return note
}

// AddNoteFromResult adds a note for a catalog hit. A nil position is
// replaced with a random spot on the board.
func (b *Board) AddNoteFromResult(r TrackResult, pos *Position) Note {
	note := Note{
		ID:         b.newID(),
		Title:      joinTitle(r.TrackTitle, r.ArtistName),
		Lyrics:     lyricsPlaceholder,
		Mood:       b.currentMood,
		Position:   b.placement(pos),
		PreviewURL: r.PreviewURL,
		ArtworkURL: r.ArtworkURL,
	}
	b.notes = append(b.notes, note)
	return note
}

func (b *Board) AddNoteFromSuggestion(s Song, pos *Position) Note {
	mood := s.Mood
	if !mood.Valid() {
		mood = b.currentMood
	}
	note := Note{
		ID:         b.newID(),
		Title:      joinTitle(s.Title, s.Artist),
		Lyrics:     s.Lyrics,
		Mood:       mood,
		Position:   b.placement(pos),
		YouTubeURL: s.YouTubeURL(),
	}
	b.notes = append(b.notes, note)
	return note
}

// UpdateNote merges patch into the note with the given id. A missing id
// is a no-op: edits can race a delete from the same screen.
func (b *Board) UpdateNote(id string, patch NotePatch) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	updated := patch.apply(b.notes[i])
	updated.ID = id
	updated.Position = b.bounds.Clamp(updated.Position)
	b.notes[i] = updated
	return true
}

func (b *Board) DeleteNote(id string) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.notes = append(b.notes[:i], b.notes[i+1:]...)
	return true
}

func (b *Board) ClearAll() {
	b.notes = make([]Note, 0)
}

func (b *Board) SetCurrentMood(m Mood) bool {
	if !m.Valid() {
		return false
	}
	b.currentMood = m
	return true
}

func (b *Board) SetSelectedTheme(key ThemeKey) bool {
	if !b.palette.HasTheme(key) {
		return false
	}
	b.selectedTheme = key
	return true
}

// restoreNote puts a previously deleted note back at its old index. It
// refuses ids that are already on the board.
func (b *Board) restoreNote(note Note, index int) bool {
	if note.ID == "" || b.indexOf(note.ID) >= 0 || !note.Mood.Valid() {
		return false
	}
	if index < 0 || index > len(b.notes) {
		index = len(b.notes)
	}
	note.Position = b.bounds.Clamp(note.Position)
	b.notes = append(b.notes, Note{})
	copy(b.notes[index+1:], b.notes[index:])
	b.notes[index] = note
	return true
}

const maxIDAttempts = 8

func (b *Board) newID() string {
	for i := 0; i < maxIDAttempts; i++ {
		if id := b.ids(); id != "" && b.indexOf(id) < 0 {
			return id
		}
	}
	for {
		if id := uuid.NewString(); b.indexOf(id) < 0 {
			return id
		}
	}
}

func (b *Board) placement(pos *Position) Position {
	if pos != nil {
		return b.bounds.Clamp(*pos)
	}
	return b.randomIn(b.area())
}

// RandomPositionWithin picks a random spot inside both area and the board
// bounds. When the two don't overlap the whole board is used.
func (b *Board) RandomPositionWithin(area Bounds) Position {
	board := b.area()
	overlap := Bounds{
		MinX: math.Max(area.MinX, board.MinX),
		MinY: math.Max(area.MinY, board.MinY),
		MaxX: math.Min(area.MaxX, board.MaxX),
		MaxY: math.Min(area.MaxY, board.MaxY),
	}
	if overlap.MinX > overlap.MaxX || overlap.MinY > overlap.MaxY {
		return b.randomIn(board)
	}
	return b.randomIn(overlap)
}

func (b *Board) area() Bounds {
	if b.bounds == nil {
		return Bounds{MaxX: defaultBoardWidth, MaxY: defaultBoardHeight}
	}
	return *b.bounds
}

func (b *Board) randomIn(area Bounds) Position {
	return Position{
		X: area.MinX + math.Floor(b.rng.Float64()*(area.MaxX-area.MinX)),
		Y: area.MinY + math.Floor(b.rng.Float64()*(area.MaxY-area.MinY)),
	}
}

func joinTitle(title, artist string) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{title, artist} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " - ")
}
