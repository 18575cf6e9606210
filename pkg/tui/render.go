package tui

import (
	"math"
	"sort"
	"strings"

	"gitlab.com/foundationdata/widgetboard/pkg/components"
	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
)

// Frame is one widget as it is drawn: its cell rectangle, title and the
// already rendered interior.
type Frame struct {
	ID      string
	Cell    geometry.CellRect
	Title   string
	Content string
	Focused bool
}

// Inner returns the interior size left inside the border.
func (f Frame) Inner() (w, h int) {
	return max(f.Cell.W-2, 0), max(f.Cell.H-2, 0)
}

// RenderBoard draws frames in the given order, bottom first, then the snap
// guides above all of them.
func RenderBoard(width, height int, frames []Frame, guides []snap.Guide, scale geometry.Scale, th theme.Theme) []string {
	c := NewCanvas(width, height)
	for _, f := range frames {
		c.Overlay(f.Cell.X, f.Cell.Y, renderFrame(f, th))
	}
	for _, g := range guides {
		drawGuide(c, g, scale, th.Guide)
	}
	return c.Rows()
}

func renderFrame(f Frame, th theme.Theme) []string {
	st := components.FrameStyle{
		Border:      components.ParseBorder(th.BorderStyle),
		Title:       f.Title,
		BorderColor: th.Border,
		TitleColor:  th.Title,
		Closable:    true,
		Resizable:   true,
	}
	if f.Focused {
		st.Border = components.ParseBorder(th.FocusStyle)
		st.BorderColor = th.BorderFocus
	}
	w, h := max(f.Cell.W, 2), max(f.Cell.H, 2)
	return components.RenderFrame(f.Content, w, h, st)
}

// GuideCells maps a guide to the cells it is drawn on: a one-column line
// for vertical guides, a one-row line for horizontal ones, centred on the
// aligned edge.
func GuideCells(g snap.Guide, scale geometry.Scale) geometry.CellRect {
	cw, ch := scale.StepX(), scale.StepY()
	round := func(v float64) int { return int(math.Round(v)) }
	if g.Vertical() {
		top, bottom := round(g.Y/ch), round((g.Y+g.Height)/ch)
		return geometry.CellRect{X: round((g.X + g.Width/2) / cw), Y: top, W: 1, H: max(bottom-top, 1)}
	}
	left, right := round(g.X/cw), round((g.X+g.Width)/cw)
	return geometry.CellRect{X: left, Y: round((g.Y + g.Height/2) / ch), W: max(right-left, 1), H: 1}
}

func drawGuide(c *Canvas, g snap.Guide, scale geometry.Scale, color string) {
	cell := GuideCells(g, scale)
	if g.Vertical() {
		glyph := components.Paint(color, "┃")
		for y := cell.Y; y < cell.Bottom(); y++ {
			c.Set(cell.X, y, glyph)
		}
		return
	}
	c.Set(cell.X, cell.Y, components.Paint(color, strings.Repeat("━", cell.W)))
}

// FeedHealth summarises feed health for the status bar: empty with no
// feeds, "feeds ok" when every feed's last cycle succeeded, otherwise the
// failing feeds by name.
func FeedHealth(health map[string]bool) string {
	if len(health) == 0 {
		return ""
	}
	var down []string
	for name, ok := range health {
		if !ok {
			down = append(down, name)
		}
	}
	if len(down) == 0 {
		return "feeds ok"
	}
	sort.Strings(down)
	return "feed down: " + strings.Join(down, ", ")
}

// RenderStatusBar renders the bottom line: an optional message, then the
// key hints, padded or cut to exactly width cells.
func RenderStatusBar(msg, hints string, width int) string {
	if width <= 0 {
		return ""
	}
	text := hints
	if msg != "" {
		text = msg + "  |  " + hints
	}
	return components.Dim(components.Fit(text, width))
}
