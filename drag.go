package main

// Bounds is the rectangle note positions are clamped to. A nil *Bounds
// means the board is unclamped.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b *Bounds) Clamp(p Position) Position {
	if b == nil {
		return p
	}
	return Position{
		X: clampFloat(p.X, b.MinX, b.MaxX),
		Y: clampFloat(p.Y, b.MinY, b.MaxY),
	}
}

func (b *Bounds) Contains(p Position) bool {
	if b == nil {
		return true
	}
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// NoteStore is the part of the board a drag needs to commit.
type NoteStore interface {
	Note(id string) (Note, bool)
	Bounds() *Bounds
	UpdateNote(id string, patch NotePatch) bool
}

// DragController turns one pointer gesture on one note into at most one
// position update. The running offset lives here only; the board never
// sees it until End.
type DragController struct {
	noteID string
	state  DragState
	startX float64
	startY float64
	dx     float64
	dy     float64
}

func NewDragController(noteID string) *DragController {
	return &DragController{noteID: noteID}
}

func (d *DragController) NoteID() string {
	return d.noteID
}

func (d *DragController) State() DragState {
	return d.state
}

func (d *DragController) Dragging() bool {
	return d.state == DragDragging
}

// Begin starts a gesture at the given pointer position. A Begin while
// already dragging restarts the gesture and drops the old offset.
func (d *DragController) Begin(x, y float64) {
	d.state = DragDragging
	d.startX = x
	d.startY = y
	d.dx = 0
	d.dy = 0
}

// Move records a pointer sample. The offset is always measured from the
// gesture start, not from the previous sample.
func (d *DragController) Move(x, y float64) {
	if d.state != DragDragging {
		return
	}
	d.dx = x - d.startX
	d.dy = y - d.startY
}

// Nudge adds to the running offset directly, for keyboard moves.
func (d *DragController) Nudge(dx, dy float64) {
	if d.state != DragDragging {
		return
	}
	d.dx += dx
	d.dy += dy
}

func (d *DragController) Offset() (float64, float64) {
	if d.state != DragDragging {
		return 0, 0
	}
	return d.dx, d.dy
}

// End commits the gesture to the store and returns to Idle. It reports
// false when nothing was committed: no gesture in progress, or the note
// was deleted mid-drag.
func (d *DragController) End(store NoteStore) (Position, bool) {
	if d.state != DragDragging {
		return Position{}, false
	}
	dx, dy := d.dx, d.dy
	d.reset()

	note, ok := store.Note(d.noteID)
	if !ok {
		return Position{}, false
	}
	pos := store.Bounds().Clamp(note.Position.Add(dx, dy))
	if !store.UpdateNote(d.noteID, NotePatch{Position: &pos}) {
		return Position{}, false
	}
	return pos, true
}

// Cancel aborts the gesture without touching the store.
func (d *DragController) Cancel() {
	d.reset()
}

func (d *DragController) reset() {
	d.state = DragIdle
	d.startX = 0
	d.startY = 0
	d.dx = 0
	d.dy = 0
}
