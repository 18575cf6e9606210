// Package layout splits a terminal area into regions from declarative
// constraints. The app uses it to carve the screen into header, sidebar,
// board canvas and status bar.
//
//   - Length(n): exactly n cells
//   - Percentage(p): p percent of the area
//   - Min(n): at least n cells, growing when nothing else fills
//   - Fill(w): a share of what is left, proportional to w
//
// When the area is too small, regions are granted in order and later ones
// shrink first.
package layout

// Rect is an area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the cell (px, py) lies inside r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Inner shrinks r by margin on every side.
func (r Rect) Inner(margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	r.X += margin
	r.Y += margin
	r.Width = max(0, r.Width-2*margin)
	r.Height = max(0, r.Height-2*margin)
	return r
}

// Direction is the axis a split runs along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Constraint sizes one region. The set is closed.
type Constraint interface {
	constraint()
}

// Length is a fixed size.
type Length struct{ Value int }

// Percentage is a share of the whole area, 0 to 100.
type Percentage struct{ Value int }

// Min is a lower bound that absorbs surplus when no Fill is present.
type Min struct{ Value int }

// Fill takes surplus in proportion to Weight. Zero weight counts as 1.
type Fill struct{ Weight int }

func (Length) constraint()     {}
func (Percentage) constraint() {}
func (Min) constraint()        {}
func (Fill) constraint()       {}

// Layout is a reusable split specification.
type Layout struct {
	direction   Direction
	constraints []Constraint
	spacing     int
}

// New returns a layout splitting along dir.
func New(dir Direction, constraints ...Constraint) *Layout {
	return &Layout{direction: dir, constraints: constraints}
}

// WithSpacing sets the gap between regions.
func (l *Layout) WithSpacing(s int) *Layout {
	l.spacing = max(0, s)
	return l
}

// Split divides area into one Rect per constraint.
func (l *Layout) Split(area Rect) []Rect {
	n := len(l.constraints)
	if n == 0 {
		return nil
	}
	total := area.Width
	if l.direction == Vertical {
		total = area.Height
	}
	avail := max(0, total-l.spacing*(n-1))
	sizes := solve(l.constraints, avail)

	out := make([]Rect, n)
	pos := 0
	for i, size := range sizes {
		if l.direction == Vertical {
			out[i] = Rect{X: area.X, Y: area.Y + pos, Width: area.Width, Height: size}
		} else {
			out[i] = Rect{X: area.X + pos, Y: area.Y, Width: size, Height: area.Height}
		}
		pos += size + l.spacing
	}
	return out
}

func solve(cs []Constraint, avail int) []int {
	sizes := make([]int, len(cs))
	used := 0
	fillWeight := 0
	for i, c := range cs {
		switch c := c.(type) {
		case Length:
			sizes[i] = max(0, c.Value)
		case Percentage:
			sizes[i] = avail * clampInt(c.Value, 0, 100) / 100
		case Min:
			sizes[i] = max(0, c.Value)
		case Fill:
			fillWeight += weight(c)
		}
		used += sizes[i]
	}

	if surplus := avail - used; surplus > 0 {
		switch {
		case fillWeight > 0:
			spread(cs, sizes, surplus, fillWeight, func(c Constraint) int {
				if f, ok := c.(Fill); ok {
					return weight(f)
				}
				return 0
			})
		default:
			mins := 0
			for _, c := range cs {
				if _, ok := c.(Min); ok {
					mins++
				}
			}
			if mins > 0 {
				spread(cs, sizes, surplus, mins, func(c Constraint) int {
					if _, ok := c.(Min); ok {
						return 1
					}
					return 0
				})
			}
		}
		return sizes
	}

	// Over-committed: grant in order.
	left := avail
	for i := range sizes {
		sizes[i] = min(sizes[i], left)
		left -= sizes[i]
	}
	return sizes
}

// spread hands surplus out by weight; rounding leftovers go to the last
// weighted region.
func spread(cs []Constraint, sizes []int, surplus, total int, w func(Constraint) int) {
	given, last := 0, -1
	for i, c := range cs {
		if wt := w(c); wt > 0 {
			share := surplus * wt / total
			sizes[i] += share
			given += share
			last = i
		}
	}
	if last >= 0 {
		sizes[last] += surplus - given
	}
}

func weight(f Fill) int {
	if f.Weight <= 0 {
		return 1
	}
	return f.Weight
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// SplitVertical splits area top to bottom.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	return New(Vertical, constraints...).Split(area)
}

// SplitHorizontal splits area left to right.
func SplitHorizontal(area Rect, constraints ...Constraint) []Rect {
	return New(Horizontal, constraints...).Split(area)
}
