// Package tui composites the board onto the terminal: widget frames stacked
// by z order, snap guides on top, and the one-line bars around them.
package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size block of terminal rows that styled blocks are
// overlaid onto. Later overlays cover earlier ones.
type Canvas struct {
	w, h int
	rows []string
}

// NewCanvas returns a blank canvas of w x h cells.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{w: w, h: h, rows: make([]string, h)}
	blank := strings.Repeat(" ", w)
	for i := range c.rows {
		c.rows[i] = blank
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.h }

// Overlay draws block with its top-left cell at (x, y), clipping whatever
// falls outside the canvas. Escape sequences in block and canvas survive;
// each overlaid segment is closed with a reset so styles do not bleed.
func (c *Canvas) Overlay(x, y int, block []string) {
	for dy, seg := range block {
		ry := y + dy
		if ry < 0 || ry >= c.h {
			continue
		}
		bx := x
		if bx < 0 {
			seg = ansi.TruncateLeft(seg, -bx, "")
			bx = 0
		}
		segW := ansi.StringWidth(seg)
		if bx+segW > c.w {
			seg = ansi.Truncate(seg, c.w-bx, "")
			segW = c.w - bx
		}
		if segW <= 0 {
			continue
		}
		line := c.rows[ry]
		left := ansi.Truncate(line, bx, "")
		right := ansi.TruncateLeft(line, bx+segW, "")
		c.rows[ry] = left + reset + seg + reset + right
	}
}

// Set writes a single cell.
func (c *Canvas) Set(x, y int, s string) {
	c.Overlay(x, y, []string{s})
}

// Rows returns the canvas rows.
func (c *Canvas) Rows() []string {
	return append([]string(nil), c.rows...)
}

// String joins the rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.rows, "\n")
}

const reset = "\x1b[0m"
