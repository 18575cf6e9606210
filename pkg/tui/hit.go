package tui

// Part is the region of a frame a mouse press landed on.
type Part int

const (
	PartNone Part = iota
	PartBody
	PartClose
	PartCorner
	PartRight
	PartBottom
)

func (p Part) String() string {
	switch p {
	case PartBody:
		return "body"
	case PartClose:
		return "close"
	case PartCorner:
		return "corner"
	case PartRight:
		return "right"
	case PartBottom:
		return "bottom"
	default:
		return "none"
	}
}

// HitTest finds the topmost frame under cell (x, y). frames are in drawing
// order, so the last match wins.
func HitTest(frames []Frame, x, y int) (Frame, Part) {
	for i := len(frames) - 1; i >= 0; i-- {
		if p := partAt(frames[i], x, y); p != PartNone {
			return frames[i], p
		}
	}
	return Frame{}, PartNone
}

func partAt(f Frame, x, y int) Part {
	c := f.Cell
	w, h := max(c.W, 2), max(c.H, 2)
	if x < c.X || y < c.Y || x >= c.X+w || y >= c.Y+h {
		return PartNone
	}
	right, bottom := c.X+w-1, c.Y+h-1
	switch {
	case y == c.Y && x == right-1:
		return PartClose
	case x == right && y == bottom:
		return PartCorner
	case x == right && y > c.Y:
		return PartRight
	case y == bottom && x > c.X:
		return PartBottom
	default:
		return PartBody
	}
}
