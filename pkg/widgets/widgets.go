// Package widgets draws the content of a placed widget. The board only knows
// a widget's kind key and geometry; everything shown inside the frame comes
// from the registry definition and the data store.
package widgets

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/foundationdata/widgetboard/pkg/components"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
)

// NoData is shown when a chart's dataset is missing or empty.
const NoData = "No data"

// ViewState is the per-board display state widgets read while rendering.
type ViewState struct {
	Range data.Range
	Theme theme.Theme
}

// Render draws def's content into exactly width x height cells.
func Render(def registry.Definition, store *data.Store, view ViewState, width, height int) string {
	return strings.Join(RenderLines(def, store, view, width, height), "\n")
}

// RenderLines is Render split into rows.
func RenderLines(def registry.Definition, store *data.Store, view ViewState, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	var rows []string
	switch def.Kind {
	case registry.KindText:
		rows = renderText(def.Data.Lines, width)
	case registry.KindLine:
		rows = renderLine(def, store, view, width, height)
	case registry.KindPie:
		rows = renderPie(def, store, view, width, height)
	case registry.KindBar:
		rows = renderBar(def, store, view, width, height)
	default:
		rows = []string{components.Dim(fmt.Sprintf("unsupported kind %s", def.Kind))}
	}
	return fill(rows, width, height)
}

// fill fits rows to the box, padding short content with blank rows.
func fill(rows []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		if i < len(rows) {
			out[i] = components.Fit(rows[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return out
}

func noData(width, height int) []string {
	rows := make([]string, height/2+1)
	rows[len(rows)-1] = components.Dim(components.PadCenter(NoData, width))
	return rows
}

func renderText(lines []string, width int) []string {
	var rows []string
	for _, l := range lines {
		rows = append(rows, components.Wrap(l, width)...)
	}
	return rows
}

// formatValue drops the fraction from whole numbers.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func paletteFor(th theme.Theme, n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = th.PaletteColor(i)
	}
	return colors
}
