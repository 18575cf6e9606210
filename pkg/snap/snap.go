// Package snap aligns a dragged widget rectangle to the edges of its
// neighbours and produces the guide rectangles that visualise the alignment.
//
// For every neighbour, four rules are checked in a fixed order and the first
// one that matches wins for that neighbour:
//
//  1. moving left edge  -> neighbour right edge (needs vertical overlap)
//  2. moving right edge -> neighbour left edge  (needs vertical overlap)
//  3. moving top edge   -> neighbour bottom edge (needs horizontal overlap)
//  4. moving bottom edge -> neighbour top edge   (needs horizontal overlap)
//
// Adjustments accumulate across neighbours in a single pass, so one neighbour
// may fix X while another fixes Y. A neighbour that is close on both axes
// only ever contributes its left/right alignment.
package snap

import (
	"math"

	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
)

const (
	// DefaultDistance is the edge gap, in pixels, below which edges snap.
	DefaultDistance = 20.0

	// GuideThickness is the width of a vertical guide and the height of a
	// horizontal one.
	GuideThickness = 4.0
)

// Guide is a thin highlighted rectangle marking a snapped edge. Guides are
// render-only and recomputed on every move.
type Guide struct {
	X, Y, Width, Height float64
}

// Rect returns the guide as a geometry rectangle.
func (g Guide) Rect() geometry.Rect {
	return geometry.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}

// Vertical reports whether the guide marks a vertical edge.
func (g Guide) Vertical() bool {
	return g.Width == GuideThickness && g.Height != GuideThickness
}

// Result is the snapped position and the guides produced for it.
type Result struct {
	X, Y   float64
	Guides []Guide
}

// Compute returns the snapped top-left position for moving placed at
// (proposedX, proposedY). Only moving's size is used; its own X and Y are
// ignored. others must not contain moving itself. A non-positive distance
// disables snapping.
func Compute(moving geometry.Rect, proposedX, proposedY float64, others []geometry.Rect, distance float64) Result {
	res := Result{X: proposedX, Y: proposedY}
	if distance <= 0 {
		return res
	}

	x, y := proposedX, proposedY
	w, h := moving.Width, moving.Height
	half := GuideThickness / 2

	for _, o := range others {
		right := x + w
		bottom := y + h
		vert := geometry.Overlap1D(y, bottom, o.Y, o.Bottom())
		horiz := geometry.Overlap1D(x, right, o.X, o.Right())

		switch {
		case within(x, o.Right(), distance) && vert > 0:
			x = o.Right()
			res.Guides = append(res.Guides, Guide{X: o.Right() - half, Y: math.Max(y, o.Y), Width: GuideThickness, Height: vert})
		case within(right, o.X, distance) && vert > 0:
			x = o.X - w
			res.Guides = append(res.Guides, Guide{X: o.X - half, Y: math.Max(y, o.Y), Width: GuideThickness, Height: vert})
		case within(y, o.Bottom(), distance) && horiz > 0:
			y = o.Bottom()
			res.Guides = append(res.Guides, Guide{X: math.Max(x, o.X), Y: o.Bottom() - half, Width: horiz, Height: GuideThickness})
		case within(bottom, o.Y, distance) && horiz > 0:
			y = o.Y - h
			res.Guides = append(res.Guides, Guide{X: math.Max(x, o.X), Y: o.Y - half, Width: horiz, Height: GuideThickness})
		}
	}

	res.X, res.Y = x, y
	return res
}

func within(a, b, distance float64) bool {
	return math.Abs(a-b) < distance
}
