package main

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a board and counts commits, so tests can check a
// gesture writes at most once.
type countingStore struct {
	*Board
	updates int
}

func (s *countingStore) UpdateNote(id string, patch NotePatch) bool {
	s.updates++
	return s.Board.UpdateNote(id, patch)
}

func TestDragControllerLifecycle(t *testing.T) {
	store := &countingStore{Board: newTestBoard(defaultBounds())}
	note := store.AddNote(MoodHappy, &Position{X: 50, Y: 50})

	d := NewDragController(note.ID)
	assert.Equal(t, note.ID, d.NoteID())
	assert.Equal(t, DragIdle, d.State())

	d.Move(10, 10)
	dx, dy := d.Offset()
	assert.Zero(t, dx, "move while idle is ignored")
	assert.Zero(t, dy)

	d.Begin(5, 5)
	assert.True(t, d.Dragging())
	d.Move(15, 8)
	d.Move(25, 25)
	dx, dy = d.Offset()
	assert.Equal(t, 20.0, dx, "offset is relative to the gesture start")
	assert.Equal(t, 20.0, dy)

	got, _ := store.Note(note.ID)
	assert.Equal(t, Position{X: 50, Y: 50}, got.Position, "board untouched until End")
	assert.Zero(t, store.updates)

	pos, ok := d.End(store)
	require.True(t, ok)
	assert.Equal(t, Position{X: 70, Y: 70}, pos)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, DragIdle, d.State())

	got, _ = store.Note(note.ID)
	assert.Equal(t, Position{X: 70, Y: 70}, got.Position)

	_, ok = d.End(store)
	assert.False(t, ok, "End while idle commits nothing")
	assert.Equal(t, 1, store.updates)
}

func TestDragZeroDelta(t *testing.T) {
	b := newTestBoard(defaultBounds())
	note := b.AddNote(MoodCozy, &Position{X: 120, Y: 80})

	d := NewDragController(note.ID)
	d.Begin(3, 3)
	pos, ok := d.End(b)
	require.True(t, ok)
	assert.Equal(t, note.Position, pos)
}

func TestDragClampsToBounds(t *testing.T) {
	b := newTestBoard(defaultBounds())
	note := b.AddNote(MoodSad, &Position{X: 290, Y: 490})

	d := NewDragController(note.ID)
	d.Begin(0, 0)
	d.Move(50, 50)
	pos, ok := d.End(b)
	require.True(t, ok)
	assert.Equal(t, Position{X: 300, Y: 500}, pos)

	d.Begin(0, 0)
	d.Nudge(-400, -600)
	pos, ok = d.End(b)
	require.True(t, ok)
	assert.Equal(t, Position{X: 0, Y: 0}, pos)
}

func TestDragUnclamped(t *testing.T) {
	b := newTestBoard(nil)
	note := b.AddNote(MoodSad, &Position{X: 290, Y: 490})

	d := NewDragController(note.ID)
	d.Begin(0, 0)
	d.Move(50, 50)
	pos, ok := d.End(b)
	require.True(t, ok)
	assert.Equal(t, Position{X: 340, Y: 540}, pos)
}

func TestDragCancel(t *testing.T) {
	store := &countingStore{Board: newTestBoard(defaultBounds())}
	note := store.AddNote(MoodChill, &Position{X: 10, Y: 20})

	d := NewDragController(note.ID)
	d.Begin(0, 0)
	d.Move(30, 30)
	d.Cancel()

	assert.Equal(t, DragIdle, d.State())
	_, ok := d.End(store)
	assert.False(t, ok)
	assert.Zero(t, store.updates)
	got, _ := store.Note(note.ID)
	assert.Equal(t, Position{X: 10, Y: 20}, got.Position)
}

func TestDragNoteDeletedMidDrag(t *testing.T) {
	store := &countingStore{Board: newTestBoard(defaultBounds())}
	note := store.AddNote(MoodHappy, nil)

	d := NewDragController(note.ID)
	d.Begin(0, 0)
	d.Move(5, 5)
	require.True(t, store.DeleteNote(note.ID))

	_, ok := d.End(store)
	assert.False(t, ok)
	assert.Zero(t, store.updates)
	assert.Equal(t, DragIdle, d.State(), "controller returns to idle either way")
	assert.Equal(t, 0, store.Len())
}

func TestDragBeginRestarts(t *testing.T) {
	b := newTestBoard(defaultBounds())
	note := b.AddNote(MoodHappy, &Position{X: 100, Y: 100})

	d := NewDragController(note.ID)
	d.Begin(0, 0)
	d.Move(40, 40)
	d.Begin(10, 10)
	d.Move(15, 10)

	pos, ok := d.End(b)
	require.True(t, ok)
	assert.Equal(t, Position{X: 105, Y: 100}, pos)
}

func TestProperty_DragEndStaysInBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("committed position is clamp(start + offset)", prop.ForAll(
		func(x, y, dx, dy float64) bool {
			b := newTestBoard(defaultBounds())
			note := b.AddNote(MoodHappy, &Position{X: x, Y: y})

			d := NewDragController(note.ID)
			d.Begin(0, 0)
			d.Move(dx, dy)
			pos, ok := d.End(b)
			if !ok {
				return false
			}
			want := b.Bounds().Clamp(note.Position.Add(dx, dy))
			return pos == want && b.Bounds().Contains(pos)
		},
		gen.Float64Range(0, 300),
		gen.Float64Range(0, 500),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

func TestBoundsClamp(t *testing.T) {
	var unbounded *Bounds
	p := Position{X: -5, Y: 1e6}
	assert.Equal(t, p, unbounded.Clamp(p))
	assert.True(t, unbounded.Contains(p))

	b := &Bounds{MinX: 10, MinY: 20, MaxX: 30, MaxY: 40}
	assert.Equal(t, Position{X: 10, Y: 40}, b.Clamp(Position{X: 0, Y: 100}))
	assert.Equal(t, Position{X: 15, Y: 25}, b.Clamp(Position{X: 15, Y: 25}))
	assert.False(t, b.Contains(Position{X: 0, Y: 25}))
}
