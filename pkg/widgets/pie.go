package widgets

import (
	"fmt"

	"gitlab.com/foundationdata/widgetboard/pkg/components"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

// minLegendWidth is the narrowest legend drawn next to the disc. Narrower
// widgets show the legend alone.
const minLegendWidth = 14

func renderPie(def registry.Definition, store *data.Store, view ViewState, width, height int) []string {
	cats, ok := categories(store, def.Data.Categories)
	total := data.Total(cats)
	if !ok || len(cats) == 0 || total <= 0 {
		return noData(width, height)
	}
	colors := paletteFor(view.Theme, len(cats))

	// A braille cell is two dots wide and four tall, so a round disc needs
	// twice as many columns as rows.
	pieW := min(2*height, width/2)
	legendW := width - pieW - 1
	if legendW < minLegendWidth {
		pieW, legendW = 0, width
	}

	legend := pieLegend(cats, total, colors, legendW)
	if pieW == 0 {
		return legend
	}

	values := make([]float64, len(cats))
	for i, c := range cats {
		values[i] = c.Value
	}
	disc := components.PieChart(values, colors, pieW, height)
	rows := make([]string, height)
	for i := range rows {
		l := ""
		if i < len(legend) {
			l = legend[i]
		}
		rows[i] = disc[i] + " " + l
	}
	return rows
}

// pieLegend lists each slice as swatch, name, share bar and percentage.
func pieLegend(cats []data.Category, total float64, colors []string, width int) []string {
	nameW := 0
	for _, c := range cats {
		nameW = max(nameW, components.VisibleLen(c.Name))
	}
	nameW = min(nameW, max(width-12, 3))
	barW := width - nameW - 8

	rows := make([]string, len(cats))
	for i, c := range cats {
		share := c.Value / total
		row := components.Paint(colors[i], "■") + " " +
			components.Fit(components.Ellipsize(c.Name, nameW), nameW) + " "
		if barW > 0 {
			row += components.Paint(colors[i], components.HBar(share, barW)) + " "
		}
		rows[i] = row + fmt.Sprintf("%3.0f%%", share*100)
	}
	return rows
}

func categories(store *data.Store, name string) ([]data.Category, bool) {
	if store == nil {
		return nil, false
	}
	return store.Categories(name)
}
