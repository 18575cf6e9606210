package widgets

import (
	"gitlab.com/foundationdata/widgetboard/pkg/components"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

// usesRange reports whether the series is the analytics pair the range
// slider switches between.
func usesRange(series string) bool {
	return series == data.SeriesHourly || series == data.SeriesDaily
}

func renderLine(def registry.Definition, store *data.Store, view ViewState, width, height int) []string {
	var (
		snap  *data.Snapshot
		ok    bool
		label string
	)
	if usesRange(def.Data.Series) {
		label = view.Range.Label()
		if store != nil {
			snap, ok = store.Window(view.Range)
		}
	} else {
		label = def.Data.Series
		if store != nil {
			snap, ok = store.GetLatestN(def.Data.Series, width*2)
		}
	}

	if !ok || snap.Len() == 0 {
		return append([]string{components.Dim(components.Ellipsize(label, width))}, noData(width, height-1)...)
	}

	rows := []string{lineHeader(label, formatValue(snap.Last()), width)}
	if height > 1 {
		rows = append(rows, components.LineChart(snap.Values, view.Theme.Line, width, height-1, true)...)
	}
	return rows
}

// lineHeader puts the label on the left and the newest value on the right,
// dropping the value when the row is too narrow for both.
func lineHeader(label, last string, width int) string {
	room := width - len(last) - 1
	if room < 8 {
		return components.Dim(components.Ellipsize(label, width))
	}
	return components.Dim(components.PadRight(components.Ellipsize(label, room), room)) +
		" " + components.Bold(last)
}
