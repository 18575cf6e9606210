package board

import (
	"math"

	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
)

// Mode is the state of an Interaction.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Handle selects which edges a resize moves.
type Handle int

const (
	// HandleCorner moves the right and bottom edges.
	HandleCorner Handle = iota
	// HandleRight moves only the right edge.
	HandleRight
	// HandleBottom moves only the bottom edge.
	HandleBottom
)

// Interaction tracks one pointer-driven drag or resize over a board. It is
// owned by the view layer's event loop and is not safe for concurrent use.
//
// The lifecycle is Idle -> Dragging|Resizing -> Idle. Every Move commits the
// snapped geometry to the board and replaces the current guides; End keeps
// the last geometry and Cancel restores the geometry captured at the start.
// Both clear the guides.
type Interaction struct {
	b      *Board
	mode   Mode
	id     string
	handle Handle
	start  Instance
	grabX  float64
	grabY  float64
	guides []snap.Guide
}

// NewInteraction returns an idle interaction over b.
func NewInteraction(b *Board) *Interaction {
	return &Interaction{b: b}
}

// Mode returns the current state.
func (it *Interaction) Mode() Mode { return it.mode }

// Active reports whether a drag or resize is in progress.
func (it *Interaction) Active() bool { return it.mode != ModeIdle }

// ID returns the id of the instance being manipulated, or "" when idle.
func (it *Interaction) ID() string { return it.id }

// Guides returns the guides produced by the most recent Move.
func (it *Interaction) Guides() []snap.Guide {
	if len(it.guides) == 0 {
		return nil
	}
	return append([]snap.Guide(nil), it.guides...)
}

// BeginDrag starts dragging the instance with id from pointer (px, py) and
// brings it to front. An unknown id leaves the interaction idle. A drag or
// resize already in progress is ended first.
func (it *Interaction) BeginDrag(id string, px, py float64) error {
	return it.begin(ModeDragging, id, HandleCorner, px, py)
}

// BeginResize starts resizing the instance with id using handle.
func (it *Interaction) BeginResize(id string, handle Handle, px, py float64) error {
	return it.begin(ModeResizing, id, handle, px, py)
}

func (it *Interaction) begin(mode Mode, id string, handle Handle, px, py float64) error {
	if !geometry.IsFinite(px) || !geometry.IsFinite(py) {
		return ErrNonFinite
	}
	if it.Active() {
		it.End()
	}
	if !it.b.BringToFront(id) {
		return nil
	}
	in, ok := it.b.Get(id)
	if !ok {
		return nil
	}
	it.mode = mode
	it.id = id
	it.handle = handle
	it.start = in
	it.grabX, it.grabY = px, py
	it.guides = nil
	it.b.log.Debug("interaction started", "mode", mode, "id", id, "x", px, "y", py)
	return nil
}

// Move applies a pointer move. Positions that are not finite are rejected
// with ErrNonFinite and change nothing. If the instance was removed while
// the interaction was running, the interaction silently returns to idle.
func (it *Interaction) Move(px, py float64) error {
	if !it.Active() {
		return ErrNoInteraction
	}
	if !geometry.IsFinite(px) || !geometry.IsFinite(py) {
		return ErrNonFinite
	}
	cur, ok := it.b.Get(it.id)
	if !ok {
		it.reset()
		return nil
	}

	dx, dy := px-it.grabX, py-it.grabY
	var target geometry.Rect
	switch it.mode {
	case ModeDragging:
		target = it.b.clamp(it.start.Rect().Moved(it.start.X+dx, it.start.Y+dy))
	case ModeResizing:
		target = it.resized(dx, dy)
	}

	res := it.b.snapRect(it.id, target)
	final := it.b.clamp(target.Moved(res.X, res.Y))

	p := Patch{X: Float(final.X), Y: Float(final.Y)}
	if it.mode == ModeResizing {
		p.Width, p.Height = Float(final.Width), Float(final.Height)
	}
	it.b.Update(cur.ID, p)
	it.guides = res.Guides
	return nil
}

func (it *Interaction) resized(dx, dy float64) geometry.Rect {
	r := it.start.Rect()
	if it.handle != HandleBottom {
		r.Width += dx
	}
	if it.handle != HandleRight {
		r.Height += dy
	}
	r.Width = math.Max(r.Width, it.b.minW)
	r.Height = math.Max(r.Height, it.b.minH)
	if bounds, ok := it.b.Bounds(); ok {
		r.Width = math.Min(r.Width, math.Max(it.b.minW, bounds.Right()-r.X))
		r.Height = math.Min(r.Height, math.Max(it.b.minH, bounds.Bottom()-r.Y))
	}
	return r
}

// End finishes the interaction, keeping the last committed geometry. It
// returns the final instance and whether an interaction was in progress.
func (it *Interaction) End() (Instance, bool) {
	if !it.Active() {
		return Instance{}, false
	}
	id, mode := it.id, it.mode
	it.reset()
	in, ok := it.b.Get(id)
	if ok {
		it.b.log.Debug("interaction ended", "mode", mode, "id", id, "x", in.X, "y", in.Y,
			"width", in.Width, "height", in.Height)
	}
	return in, ok
}

// Cancel abandons the interaction and restores the starting position and
// size. The z gained at the start is kept. It reports whether an
// interaction was in progress.
func (it *Interaction) Cancel() bool {
	if !it.Active() {
		return false
	}
	s := it.start
	it.b.Update(s.ID, Patch{X: Float(s.X), Y: Float(s.Y), Width: Float(s.Width), Height: Float(s.Height)})
	it.reset()
	return true
}

func (it *Interaction) reset() {
	it.mode = ModeIdle
	it.id = ""
	it.start = Instance{}
	it.guides = nil
}

// Nudge moves the instance with id by (dx, dy) as a single keyboard step.
// Snapping applies, except when the snapped position would leave the widget
// where it already is; then the raw step is taken so a widget aligned to a
// neighbour can still be walked away from it. It reports whether the id
// exists.
func (b *Board) Nudge(id string, dx, dy float64) (snap.Result, bool) {
	in, ok := b.Get(id)
	if !ok || !geometry.IsFinite(dx) || !geometry.IsFinite(dy) {
		return snap.Result{}, false
	}
	target := b.clamp(in.Rect().Moved(in.X+dx, in.Y+dy))
	res := b.snapRect(id, target)
	final := b.clamp(target.Moved(res.X, res.Y))
	if final.X == in.X && final.Y == in.Y {
		final = target
		res = snap.Result{X: target.X, Y: target.Y}
	}
	b.Update(id, Patch{X: Float(final.X), Y: Float(final.Y)})
	res.X, res.Y = final.X, final.Y
	return res, true
}

// ResizeBy grows or shrinks the instance with id by (dw, dh), keeping it at
// least the minimum size and inside the bounds. It reports whether the id
// exists.
func (b *Board) ResizeBy(id string, dw, dh float64) (Instance, bool) {
	in, ok := b.Get(id)
	if !ok || !geometry.IsFinite(dw) || !geometry.IsFinite(dh) {
		return Instance{}, false
	}
	w := math.Max(in.Width+dw, b.minW)
	h := math.Max(in.Height+dh, b.minH)
	if bounds, ok := b.Bounds(); ok {
		w = math.Min(w, math.Max(b.minW, bounds.Right()-in.X))
		h = math.Min(h, math.Max(b.minH, bounds.Bottom()-in.Y))
	}
	b.Update(id, Patch{Width: Float(w), Height: Float(h)})
	return b.Get(id)
}

// clamp keeps r inside the board bounds, when bounds are set.
func (b *Board) clamp(r geometry.Rect) geometry.Rect {
	bounds, ok := b.Bounds()
	if !ok {
		return r
	}
	return geometry.Clamp(r, bounds)
}
