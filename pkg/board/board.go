// Package board owns the live set of widget instances placed on a dashboard
// and the operations the view layer uses to mutate it: add, remove, update,
// list, bring to front and snap.
//
// Operations addressed by id are no-ops when the id is unknown. The view
// layer may race a stale id against a fast remove, and that must never
// crash the board.
package board

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
	"gitlab.com/foundationdata/widgetboard/pkg/zorder"
)

// Sentinel errors.
var (
	ErrUnknownKind   = errors.New("unknown widget kind")
	ErrNonFinite     = errors.New("non-finite position")
	ErrNoInteraction = errors.New("no interaction in progress")
)

// Placement offsets for newly added widgets, so sequential additions do not
// land exactly on top of each other.
const (
	placeOriginX = 40.0
	placeOriginY = 40.0
	placeStepX   = 10.0
	placeStepY   = 8.0
)

// Default minimum widget size used while resizing.
const (
	DefaultMinWidth  = 100.0
	DefaultMinHeight = 60.0
)

// Instance is one widget placed on the board.
type Instance struct {
	ID     string
	Kind   string
	X, Y   float64
	Width  float64
	Height float64
	Z      int
}

// Rect returns the instance's geometry.
func (in Instance) Rect() geometry.Rect {
	return geometry.Rect{X: in.X, Y: in.Y, Width: in.Width, Height: in.Height}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	X, Y          *float64
	Width, Height *float64
	Z             *int
}

// Float returns a pointer to v, for building patches.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building patches.
func Int(v int) *int { return &v }

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// WithZSeed sets the initial z counter value.
func WithZSeed(seed int) Option {
	return func(b *Board) { b.z = zorder.New(seed) }
}

// WithSnapDistance sets the edge snapping threshold. Zero disables snapping.
func WithSnapDistance(d float64) Option {
	return func(b *Board) { b.snapDistance = d }
}

// WithBounds confines interactive positions to bounds.
func WithBounds(bounds geometry.Rect) Option {
	return func(b *Board) {
		b.bounds = bounds
		b.bounded = !bounds.Empty()
	}
}

// WithIDFunc replaces the instance id generator. An id the board has
// already issued, even to a removed instance, is rejected by AddByKind.
func WithIDFunc(fn func(kind string) string) Option {
	return func(b *Board) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// WithMinSize sets the smallest size a resize may produce.
func WithMinSize(w, h float64) Option {
	return func(b *Board) {
		if w > 0 {
			b.minW = w
		}
		if h > 0 {
			b.minH = h
		}
	}
}

// Board is the live collection of widget instances.
type Board struct {
	mu        sync.RWMutex
	reg       *registry.Registry
	instances map[string]*Instance
	order     []string
	byKind    map[string]string
	issued    map[string]struct{}

	z            *zorder.Manager
	snapDistance float64
	bounds       geometry.Rect
	bounded      bool
	minW, minH   float64
	newID        func(kind string) string
	log          *slog.Logger
}

// New creates an empty board backed by reg.
func New(reg *registry.Registry, opts ...Option) *Board {
	b := &Board{
		reg:          reg,
		instances:    make(map[string]*Instance),
		byKind:       make(map[string]string),
		issued:       make(map[string]struct{}),
		z:            zorder.New(zorder.DefaultSeed),
		snapDistance: snap.DefaultDistance,
		minW:         DefaultMinWidth,
		minH:         DefaultMinHeight,
		newID:        defaultID,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func defaultID(kind string) string {
	return kind + "-" + uuid.NewString()
}

// Registry returns the registry the board was built with.
func (b *Board) Registry() *registry.Registry {
	return b.reg
}

// SnapDistance returns the configured snapping threshold.
func (b *Board) SnapDistance() float64 {
	return b.snapDistance
}

// Bounds returns the board bounds and whether they are enforced.
func (b *Board) Bounds() (geometry.Rect, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bounds, b.bounded
}

// SetBounds replaces the bounds, for example after the terminal is resized.
// An empty rectangle lifts them. Widgets already outside are left where
// they are until they next move.
func (b *Board) SetBounds(bounds geometry.Rect) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bounds = bounds
	b.bounded = !bounds.Empty()
}

// MinSize returns the smallest size a resize may produce.
func (b *Board) MinSize() (w, h float64) {
	return b.minW, b.minH
}

// AddByKind places a new instance of kind. At most one instance per kind
// may exist: when kind is already placed the existing instance is returned
// unchanged. An unregistered kind is a programming error and yields
// ErrUnknownKind.
func (b *Board) AddByKind(kind string) (Instance, error) {
	def, ok := b.reg.Lookup(kind)
	if !ok {
		err := fmt.Errorf("board: add %q: %w", kind, ErrUnknownKind)
		b.log.Error("add widget failed", "kind", kind, "error", err)
		return Instance{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if id, exists := b.byKind[kind]; exists {
		return *b.instances[id], nil
	}

	n := float64(len(b.order))
	in := &Instance{
		ID:     b.newID(kind),
		Kind:   kind,
		X:      placeOriginX + n*placeStepX,
		Y:      placeOriginY + n*placeStepY,
		Width:  def.DefaultWidth,
		Height: def.DefaultHeight,
		Z:      b.z.Next(),
	}
	if _, dup := b.issued[in.ID]; dup {
		return Instance{}, fmt.Errorf("board: id generator returned reused id %q", in.ID)
	}
	b.issued[in.ID] = struct{}{}
	b.instances[in.ID] = in
	b.order = append(b.order, in.ID)
	b.byKind[kind] = in.ID

	b.log.Debug("widget added", "id", in.ID, "kind", kind, "x", in.X, "y", in.Y, "z", in.Z)
	return *in, nil
}

// Remove deletes the instance with id. It reports whether anything was
// removed.
func (b *Board) Remove(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	in, ok := b.instances[id]
	if !ok {
		return false
	}
	delete(b.instances, id)
	delete(b.byKind, in.Kind)
	for i, oid := range b.order {
		if oid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.log.Debug("widget removed", "id", id, "kind", in.Kind)
	return true
}

// Update merges p into the instance with id. Non-finite or non-positive
// size fields in p are ignored. It reports whether the instance exists.
func (b *Board) Update(id string, p Patch) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	in, ok := b.instances[id]
	if !ok {
		return false
	}
	b.applyPatch(in, p)
	return true
}

func (b *Board) applyPatch(in *Instance, p Patch) {
	set := func(field string, dst *float64, v *float64, positive bool) {
		if v == nil {
			return
		}
		if !geometry.IsFinite(*v) || (positive && *v <= 0) {
			b.log.Debug("patch field dropped", "id", in.ID, "field", field, "value", *v)
			return
		}
		*dst = *v
	}
	set("x", &in.X, p.X, false)
	set("y", &in.Y, p.Y, false)
	set("width", &in.Width, p.Width, true)
	set("height", &in.Height, p.Height, true)
	if p.Z != nil {
		in.Z = *p.Z
		b.z.Observe(in.Z)
	}
}

// List returns a snapshot of every instance in insertion order. Stacking is
// decided by Z, not by list order.
func (b *Board) List() []Instance {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Instance, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.instances[id])
	}
	return out
}

// Stacked returns a snapshot ordered bottom to top, for painting.
func (b *Board) Stacked() []Instance {
	out := b.List()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Get returns the instance with id.
func (b *Board) Get(id string) (Instance, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	in, ok := b.instances[id]
	if !ok {
		return Instance{}, false
	}
	return *in, true
}

// ByKind returns the instance of kind, if placed.
func (b *Board) ByKind(kind string) (Instance, bool) {
	b.mu.RLock()
	id, ok := b.byKind[kind]
	b.mu.RUnlock()
	if !ok {
		return Instance{}, false
	}
	return b.Get(id)
}

// HasKind reports whether an instance of kind is placed.
func (b *Board) HasKind(kind string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.byKind[kind]
	return ok
}

// Len returns the number of placed instances.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// TopAt returns the topmost instance containing the point (px, py).
func (b *Board) TopAt(px, py float64) (Instance, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var top *Instance
	for _, id := range b.order {
		in := b.instances[id]
		if !in.Rect().Contains(px, py) {
			continue
		}
		if top == nil || in.Z > top.Z {
			top = in
		}
	}
	if top == nil {
		return Instance{}, false
	}
	return *top, true
}

// BringToFront gives the instance with id a z above every other instance.
// It reports whether the instance exists.
func (b *Board) BringToFront(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	in, ok := b.instances[id]
	if !ok {
		return false
	}
	in.Z = b.z.Next()
	return true
}

// Snap computes the snapped position for the instance with id placed at
// (proposedX, proposedY), using every other instance as a neighbour. An
// unknown id returns the proposed position with no guides.
func (b *Board) Snap(id string, proposedX, proposedY float64) snap.Result {
	b.mu.RLock()
	defer b.mu.RUnlock()

	in, ok := b.instances[id]
	if !ok {
		return snap.Result{X: proposedX, Y: proposedY}
	}
	return snap.Compute(in.Rect(), proposedX, proposedY, b.othersLocked(id), b.snapDistance)
}

// snapRect is Snap for a hypothetical size, used while resizing.
func (b *Board) snapRect(id string, r geometry.Rect) snap.Result {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return snap.Compute(r, r.X, r.Y, b.othersLocked(id), b.snapDistance)
}

func (b *Board) othersLocked(id string) []geometry.Rect {
	others := make([]geometry.Rect, 0, len(b.order))
	for _, oid := range b.order {
		if oid != id {
			others = append(others, b.instances[oid].Rect())
		}
	}
	return others
}
