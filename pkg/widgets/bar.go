package widgets

import (
	"gitlab.com/foundationdata/widgetboard/pkg/components"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

func renderBar(def registry.Definition, store *data.Store, view ViewState, width, height int) []string {
	cats, ok := categories(store, def.Data.Categories)
	if !ok || len(cats) == 0 {
		return noData(width, height)
	}
	limit := 0.0
	for _, c := range cats {
		limit = max(limit, c.Value)
	}
	colors := paletteFor(view.Theme, len(cats))

	if height >= 4 && width >= 2*len(cats) {
		return columnBars(cats, limit, colors, width, height)
	}
	return rowBars(cats, limit, colors, width)
}

// columnBars draws vertical bars with a label row underneath, laid out on
// the same slots components.Columns uses.
func columnBars(cats []data.Category, limit float64, colors []string, width, height int) []string {
	values := make([]float64, len(cats))
	for i, c := range cats {
		values[i] = c.Value
	}
	rows := components.Columns(values, limit, colors, width, height-1)

	slot := width / len(cats)
	barW := slot
	if slot >= 3 {
		barW = slot - 1
	}
	lead := (width - len(cats)*slot) / 2

	labels := components.PadRight("", lead)
	for _, c := range cats {
		labels += components.Fit(components.Ellipsize(c.Name, barW), slot)
	}
	return append(rows, components.Dim(labels))
}

// rowBars is the short-widget fallback: one horizontal bar per category.
func rowBars(cats []data.Category, limit float64, colors []string, width int) []string {
	nameW, valW := 0, 0
	for _, c := range cats {
		nameW = max(nameW, components.VisibleLen(c.Name))
		valW = max(valW, len(formatValue(c.Value)))
	}
	nameW = min(nameW, max(width/3, 3))
	barW := width - nameW - valW - 2

	rows := make([]string, len(cats))
	for i, c := range cats {
		row := components.Fit(components.Ellipsize(c.Name, nameW), nameW) + " "
		if barW > 0 && limit > 0 {
			row += components.Paint(colors[i], components.HBar(c.Value/limit, barW)) + " "
		}
		rows[i] = row + components.PadLeft(formatValue(c.Value), valW)
	}
	return rows
}
