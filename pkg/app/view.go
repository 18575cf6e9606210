package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/foundationdata/widgetboard/pkg/components"
	"gitlab.com/foundationdata/widgetboard/pkg/layout"
	"gitlab.com/foundationdata/widgetboard/pkg/tui"
	"gitlab.com/foundationdata/widgetboard/pkg/widgets"
)

// HeaderTitle is the text of the top bar.
const HeaderTitle = "Dashboard Overview"

// SidebarTitle heads the widget catalog.
const SidebarTitle = "Add Widgets"

// screen splits the terminal into header, sidebar, board canvas and footer.
func (m Model) screen() (header, side, canvas, footer layout.Rect) {
	full := layout.Rect{Width: m.width, Height: m.height}
	rows := layout.SplitVertical(full,
		layout.Length{Value: headerHeight},
		layout.Fill{Weight: 1},
		layout.Length{Value: len(m.footer())},
	)
	cols := layout.SplitHorizontal(rows[1],
		layout.Length{Value: sidebarWidth},
		layout.Fill{Weight: 1},
	)
	return rows[0], cols[0], cols[1], rows[2]
}

// boardArea is the canvas rectangle in screen cells.
func (m Model) boardArea() layout.Rect {
	_, _, canvas, _ := m.screen()
	return canvas
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	header, side, canvas, footer := m.screen()

	lines := make([]string, 0, m.height)
	if header.Height > 0 {
		lines = append(lines, m.renderHeader(header.Width))
	}
	sideRows := m.renderSidebar(side.Width, side.Height)
	boardRows := tui.RenderBoard(canvas.Width, canvas.Height, m.frames(true), m.Guides(), m.scale, m.theme)
	for i := 0; i < side.Height; i++ {
		row := sideRows[i]
		if i < len(boardRows) {
			row += boardRows[i]
		}
		lines = append(lines, row)
	}
	foot := m.footer()
	lines = append(lines, foot[:min(footer.Height, len(foot))]...)
	return m.zones.Scan(strings.Join(lines, "\n"))
}

// frames lists the instances bottom to top as drawable frames. Content is
// only rendered when asked for; hit testing needs just the geometry. Bodies
// rendered for the current store version are reused.
func (m Model) frames(content bool) []tui.Frame {
	reg := m.board.Registry()
	stacked := m.board.Stacked()
	out := make([]tui.Frame, 0, len(stacked))
	if content {
		m.cache.syncVersion(m.store.Version())
	}
	var (
		tasks []widgets.Task
		keys  []contentKey
		slots []int
	)
	for _, in := range stacked {
		def, ok := reg.Lookup(in.Kind)
		f := tui.Frame{
			ID:      in.ID,
			Cell:    m.scale.ToCells(in.Rect()),
			Title:   def.Title,
			Focused: in.ID == m.focused,
		}
		if content && ok {
			w, h := f.Inner()
			k := contentKey{kind: in.Kind, w: w, h: h, rng: m.view.Range, theme: m.theme.Name}
			if body, hit := m.cache.get(k); hit {
				f.Content = body
			} else {
				tasks = append(tasks, widgets.Task{Def: def, Width: w, Height: h})
				keys = append(keys, k)
				slots = append(slots, len(out))
			}
		}
		out = append(out, f)
	}
	for i, c := range widgets.RenderBatch(tasks, m.store, m.view, 0) {
		out[slots[i]].Content = c
		m.cache.put(keys[i], c)
	}
	return out
}

func (m Model) renderHeader(width int) string {
	left := " " + HeaderTitle
	right := fmt.Sprintf("%d widgets · %s ", m.board.Len(), m.theme.Name)
	text := left
	if gap := width - components.VisibleLen(left) - components.VisibleLen(right); gap > 0 {
		text = left + strings.Repeat(" ", gap) + right
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color(m.theme.Header)).Render(components.Fit(text, width))
}

func (m Model) renderSidebar(width, height int) []string {
	out := make([]string, height)
	if width <= 0 {
		return out
	}
	inner := width - 1
	sb := m.sidebar
	sb.current()

	title := lipgloss.NewStyle().Bold(true).Foreground(color(m.theme.Accent))
	lines := []string{title.Render(components.Fit(" "+SidebarTitle, inner)), strings.Repeat(" ", inner)}
	for i, it := range sb.items() {
		var text string
		if it.header() {
			arrow := "▾"
			if sb.query == "" && sb.folded(it.group) {
				arrow = "▸"
			}
			text = " " + arrow + " " + it.title
		} else {
			mark := " "
			if m.board.HasKind(it.key) {
				mark = "✓"
			}
			text = "   " + mark + " " + it.title
		}
		st := lipgloss.NewStyle().Foreground(color(m.theme.Sidebar))
		if it.header() {
			st = st.Bold(true)
		}
		if i == sb.cursor {
			st = st.Reverse(true)
		}
		lines = append(lines, m.zones.Mark(it.zoneID(), st.Render(components.Fit(text, inner))))
	}

	edge := lipgloss.NewStyle().Foreground(color(m.theme.Border)).Render("│")
	blank := strings.Repeat(" ", inner)
	for i := range out {
		l := blank
		if i < len(lines) {
			l = lines[i]
		}
		out[i] = l + edge
	}
	return out
}

// footer returns the bottom lines: the search prompt while filtering,
// otherwise the optional full help above the status bar.
func (m Model) footer() []string {
	if m.searching {
		return []string{tui.RenderSearchBar(m.sidebar.query, m.width)}
	}
	var lines []string
	if m.help.ShowAll {
		for _, l := range strings.Split(m.help.View(m.keys), "\n") {
			lines = append(lines, components.Fit(l, m.width))
		}
	}
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	msg := m.status
	if m.feeds != nil {
		if h := tui.FeedHealth(m.feeds.Health()); h != "" {
			msg = strings.TrimSpace(h + "  " + msg)
		}
	}
	return append(lines, tui.RenderStatusBar(msg, hints, m.width))
}

func color(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}
