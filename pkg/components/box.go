// Package components holds the ANSI drawing primitives the board is built
// from: framed boxes, text fitting, and braille and block charts. Every
// renderer returns plain lines; compositing them onto the screen is the
// caller's job.
package components

import (
	"strings"
)

// BorderStyle selects the box-drawing character set.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderHeavy
	BorderDashed
)

// ParseBorder maps a config name to a BorderStyle, defaulting to rounded.
func ParseBorder(name string) BorderStyle {
	switch strings.ToLower(name) {
	case "single":
		return BorderSingle
	case "double":
		return BorderDouble
	case "heavy":
		return BorderHeavy
	case "dashed":
		return BorderDashed
	default:
		return BorderRounded
	}
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
	BorderDouble:  {"╔", "╗", "╚", "╝", "═", "║"},
	BorderHeavy:   {"┏", "┓", "┗", "┛", "━", "┃"},
	BorderDashed:  {"┌", "┐", "└", "┘", "┄", "┆"},
}

// Glyphs drawn into the frame for mouse affordances.
const (
	CloseGlyph  = "×"
	ResizeGlyph = "◢"
)

// FrameStyle controls how a widget frame is drawn.
type FrameStyle struct {
	Border      BorderStyle
	Title       string
	BorderColor string // hex
	TitleColor  string // hex
	Closable    bool   // close mark just left of the top-right corner
	Resizable   bool   // resize mark in place of the bottom-right corner
}

// RenderFrame draws content inside a border of exactly width x height cells
// and returns one string per row. Content lines are clipped or padded to
// the interior; missing lines are blank. Frames smaller than 2x2 render as
// nothing.
func RenderFrame(content string, width, height int, st FrameStyle) []string {
	if width < 2 || height < 2 {
		return nil
	}
	ch, ok := borderSets[st.Border]
	if !ok {
		ch = borderSets[BorderRounded]
	}
	inner := width - 2
	paint := func(s string) string { return Paint(st.BorderColor, s) }

	rows := make([]string, 0, height)
	rows = append(rows, paint(ch.topLeft)+topBar(st, ch.horizontal, inner)+paint(ch.topRight))

	var body []string
	if content != "" {
		body = strings.Split(content, "\n")
	}
	side := paint(ch.vertical)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		rows = append(rows, side+Fit(line, inner)+side)
	}

	corner := paint(ch.bottomRight)
	if st.Resizable {
		corner = Paint(st.TitleColor, ResizeGlyph)
	}
	rows = append(rows, paint(ch.bottomLeft)+paint(strings.Repeat(ch.horizontal, inner))+corner)
	return rows
}

// RenderBox is RenderFrame joined into one string.
func RenderBox(content string, width, height int, st FrameStyle) string {
	return strings.Join(RenderFrame(content, width, height, st), "\n")
}

// topBar builds the interior of the top border: a one-cell lead, the
// padded title, horizontal fill, and the optional close mark.
func topBar(st FrameStyle, h string, inner int) string {
	paint := func(s string) string { return Paint(st.BorderColor, s) }
	closeW := 0
	if st.Closable && inner >= 1 {
		closeW = 1
	}

	var b strings.Builder
	used := 0
	if st.Title != "" && inner-closeW >= 5 {
		title := Ellipsize(st.Title, inner-closeW-3)
		b.WriteString(paint(h))
		b.WriteString(" ")
		b.WriteString(Bold(Paint(st.TitleColor, title)))
		b.WriteString(" ")
		used = 3 + VisibleLen(title)
	}
	if fill := inner - closeW - used; fill > 0 {
		b.WriteString(paint(strings.Repeat(h, fill)))
	}
	if closeW == 1 {
		b.WriteString(Paint(st.TitleColor, CloseGlyph))
	}
	return b.String()
}
