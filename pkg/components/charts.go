package components

import (
	"fmt"
	"math"
	"strings"
)

// Eighth-cell block runes, indexed by fill level 0..8.
var (
	hBlocks = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}
	vBlocks = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

// HBar renders ratio (clamped to [0, 1]) as a left-aligned bar of exactly
// width cells with eighth-cell precision.
func HBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio = clamp01(ratio)
	eighths := int(math.Round(ratio * float64(width*8)))
	full := eighths / 8
	var b strings.Builder
	b.WriteString(strings.Repeat("█", full))
	if full < width {
		b.WriteRune(hBlocks[eighths%8])
		b.WriteString(strings.Repeat(" ", width-full-1))
	}
	return b.String()
}

// Columns draws one vertical bar per value, scaled against limit, spread
// evenly over width x height cells. colors cycle over the bars.
func Columns(values []float64, limit float64, colors []string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	rows := make([]string, height)
	n := len(values)
	if n == 0 || limit <= 0 {
		for i := range rows {
			rows[i] = strings.Repeat(" ", width)
		}
		return rows
	}

	slot := width / n
	if slot < 1 {
		slot = 1
		n = width
	}
	barW := slot
	if slot >= 3 {
		barW = slot - 1
	}
	lead := (width - n*slot) / 2

	levels := make([]int, n)
	for i := 0; i < n; i++ {
		levels[i] = int(math.Round(clamp01(values[i]/limit) * float64(height*8)))
	}

	for r := 0; r < height; r++ {
		fromBottom := height - 1 - r
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", lead))
		for i := 0; i < n; i++ {
			lvl := levels[i] - fromBottom*8
			if lvl < 0 {
				lvl = 0
			}
			if lvl > 8 {
				lvl = 8
			}
			cell := strings.Repeat(string(vBlocks[lvl]), barW)
			if lvl > 0 && len(colors) > 0 {
				cell = Paint(colors[i%len(colors)], cell)
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", slot-barW))
		}
		rows[r] = PadRight(b.String(), width)
	}
	return rows
}

// LineChart plots values left to right as a connected braille line filling
// width x height cells. With axis set and enough room, a gutter on the left
// shows the maximum and minimum.
func LineChart(values []float64, color string, width, height int, axis bool) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	gutter := 0
	if axis && width >= 16 && height >= 2 {
		gutter = 6
	}
	cols := width - gutter

	lo, hi := minMax(values)
	if hi-lo < 1e-9 {
		lo, hi = lo-1, hi+1
	}

	c := NewBraille(cols, height)
	dotsW, dotsH := cols*2, height*4
	px := func(i int) int {
		if len(values) == 1 {
			return dotsW / 2
		}
		return int(math.Round(float64(i) * float64(dotsW-1) / float64(len(values)-1)))
	}
	py := func(v float64) int {
		return int(math.Round((1 - (v-lo)/(hi-lo)) * float64(dotsH-1)))
	}
	for i, v := range values {
		if i == 0 {
			c.Set(px(0), py(v), 0)
			continue
		}
		c.Line(px(i-1), py(values[i-1]), px(i), py(v), 0)
	}

	rows := c.Rows([]string{color})
	if gutter > 0 {
		for r := range rows {
			label := ""
			switch r {
			case 0:
				label = formatTick(hi)
			case len(rows) - 1:
				label = formatTick(lo)
			}
			rows[r] = Dim(PadLeft(label, gutter-1)) + " " + rows[r]
		}
	}
	return rows
}

// PieChart draws a braille disc, split clockwise from twelve o'clock into
// slices proportional to values, centred in width x height cells.
func PieChart(values []float64, colors []string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	c := NewBraille(width, height)
	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return c.Rows(nil)
	}

	dotsW, dotsH := width*2, height*4
	radius := math.Min(float64(dotsW), float64(dotsH))/2 - 0.5
	cx, cy := float64(dotsW-1)/2, float64(dotsH-1)/2

	bounds := make([]float64, len(values))
	acc := 0.0
	for i, v := range values {
		if v > 0 {
			acc += v
		}
		bounds[i] = acc / total
	}

	for y := 0; y < dotsH; y++ {
		for x := 0; x < dotsW; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			turn := math.Atan2(dx, -dy) / (2 * math.Pi)
			if turn < 0 {
				turn++
			}
			slice := len(bounds) - 1
			for i, b := range bounds {
				if turn < b {
					slice = i
					break
				}
			}
			c.Set(x, y, slice)
		}
	}
	return c.Rows(colors)
}

func formatTick(v float64) string {
	switch {
	case math.Abs(v) >= 10000:
		return fmt.Sprintf("%.0fk", v/1000)
	case math.Abs(v) >= 100:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

func minMax(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
