package components

import "strings"

// brailleBits maps a dot position inside a 2x4 braille cell to its bit.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille is a dot canvas where each terminal cell holds 2x4 dots. Every
// cell remembers the palette index of the last dot set in it.
type Braille struct {
	w, h  int
	dots  []uint8
	color []int
}

// NewBraille returns a blank canvas of w x h cells.
func NewBraille(w, h int) *Braille {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Braille{w: w, h: h, dots: make([]uint8, w*h), color: make([]int, w*h)}
	for i := range c.color {
		c.color[i] = -1
	}
	return c
}

// Set lights the dot at (x, y) in dot coordinates. Out-of-range dots are
// ignored.
func (c *Braille) Set(x, y, colorIdx int) {
	if x < 0 || y < 0 || x >= c.w*2 || y >= c.h*4 {
		return
	}
	i := (y/4)*c.w + x/2
	c.dots[i] |= brailleBits[y%4][x%2]
	c.color[i] = colorIdx
}

// Line lights the dots between two points (Bresenham).
func (c *Braille) Line(x0, y0, x1, y1, colorIdx int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, colorIdx)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Rows renders the canvas, colouring each cell from palette. Empty cells
// are spaces.
func (c *Braille) Rows(palette []string) []string {
	rows := make([]string, c.h)
	for r := 0; r < c.h; r++ {
		var b strings.Builder
		for col := 0; col < c.w; col++ {
			i := r*c.w + col
			if c.dots[i] == 0 {
				b.WriteByte(' ')
				continue
			}
			glyph := string(rune(0x2800 + int(c.dots[i])))
			if ci := c.color[i]; ci >= 0 && ci < len(palette) {
				glyph = Paint(palette[ci], glyph)
			}
			b.WriteString(glyph)
		}
		rows[r] = b.String()
	}
	return rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
