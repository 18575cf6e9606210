// Package geometry provides the axis-aligned rectangle math used by the
// widget board. Coordinates are board pixels: float64, origin top-left,
// X growing right and Y growing down.
package geometry

import "math"

// Rect is an axis-aligned rectangle in board pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Finite reports whether every field is a finite number.
func (r Rect) Finite() bool {
	return IsFinite(r.X) && IsFinite(r.Y) && IsFinite(r.Width) && IsFinite(r.Height)
}

// Contains reports whether the point (px, py) lies inside r. The left and
// top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Moved returns r with its origin at (x, y).
func (r Rect) Moved(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}

// Overlap1D returns the length of the overlap between the intervals
// [aStart, aEnd] and [bStart, bEnd], or 0 when they are disjoint.
func Overlap1D(aStart, aEnd, bStart, bEnd float64) float64 {
	return math.Max(0, math.Min(aEnd, bEnd)-math.Max(aStart, bStart))
}

// VerticalOverlap returns how much a and b overlap along the Y axis.
func VerticalOverlap(a, b Rect) float64 {
	return Overlap1D(a.Y, a.Bottom(), b.Y, b.Bottom())
}

// HorizontalOverlap returns how much a and b overlap along the X axis.
func HorizontalOverlap(a, b Rect) float64 {
	return Overlap1D(a.X, a.Right(), b.X, b.Right())
}

// Clamp moves r so that it lies inside bounds. When r is larger than bounds
// along an axis, its origin is pinned to the bounds origin on that axis.
// Size is never changed.
func Clamp(r, bounds Rect) Rect {
	r.X = clampAxis(r.X, r.Width, bounds.X, bounds.Right())
	r.Y = clampAxis(r.Y, r.Height, bounds.Y, bounds.Bottom())
	return r
}

func clampAxis(pos, size, lo, hi float64) float64 {
	if pos+size > hi {
		pos = hi - size
	}
	if pos < lo {
		pos = lo
	}
	return pos
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
