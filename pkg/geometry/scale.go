package geometry

import "math"

// Default pixel size of one terminal cell, used when the terminal does not
// report its pixel dimensions.
const (
	DefaultCellW = 10
	DefaultCellH = 20
)

// CellRect is a rectangle in terminal cells.
type CellRect struct {
	X, Y, W, H int
}

// Right returns the column just past the right edge.
func (c CellRect) Right() int {
	return c.X + c.W
}

// Bottom returns the row just past the bottom edge.
func (c CellRect) Bottom() int {
	return c.Y + c.H
}

// Scale converts between board pixels and terminal cells.
type Scale struct {
	CellW float64 // pixels per column
	CellH float64 // pixels per row
}

// DefaultScale returns the fallback 10x20 pixel cell.
func DefaultScale() Scale {
	return Scale{CellW: DefaultCellW, CellH: DefaultCellH}
}

// normalized replaces non-positive or non-finite factors with defaults.
func (s Scale) normalized() Scale {
	if s.CellW <= 0 || !IsFinite(s.CellW) {
		s.CellW = DefaultCellW
	}
	if s.CellH <= 0 || !IsFinite(s.CellH) {
		s.CellH = DefaultCellH
	}
	return s
}

// ToCells maps a pixel rectangle to the cells it covers. Widths and heights
// are rounded and never drop below one cell so a placed widget always stays
// visible.
func (s Scale) ToCells(r Rect) CellRect {
	s = s.normalized()
	c := CellRect{
		X: int(math.Round(r.X / s.CellW)),
		Y: int(math.Round(r.Y / s.CellH)),
		W: int(math.Round(r.Width / s.CellW)),
		H: int(math.Round(r.Height / s.CellH)),
	}
	if c.W < 1 {
		c.W = 1
	}
	if c.H < 1 {
		c.H = 1
	}
	return c
}

// ToPixels returns the pixel coordinate of the top-left corner of cell
// (col, row).
func (s Scale) ToPixels(col, row int) (x, y float64) {
	s = s.normalized()
	return float64(col) * s.CellW, float64(row) * s.CellH
}

// StepX is the pixel distance covered by one column.
func (s Scale) StepX() float64 {
	return s.normalized().CellW
}

// StepY is the pixel distance covered by one row.
func (s Scale) StepY() float64 {
	return s.normalized().CellH
}
