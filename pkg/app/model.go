package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/feeds"
	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
	"gitlab.com/foundationdata/widgetboard/pkg/widgets"
)

// Screen furniture sizes in cells.
const (
	headerHeight = 1
	sidebarWidth = 24
	// DefaultTickInterval is how often the store is pruned and the screen
	// redrawn when no input arrives.
	DefaultTickInterval = time.Second
)

// Config configures a Model.
type Config struct {
	Board *board.Board
	Store *data.Store
	Theme theme.Theme
	Scale geometry.Scale
	// Bounded confines widgets to the visible canvas.
	Bounded bool
	// Collapsed names the sidebar groups that start folded.
	Collapsed []string
	Updates   <-chan feeds.Update
	Tick      time.Duration
	Logger    *slog.Logger
	// Zones marks clickable sidebar rows. A private manager is created
	// when nil.
	Zones *zone.Manager
	// Feeds reports per-feed health for the status bar. Optional.
	Feeds HealthReporter
}

// HealthReporter reports whether each feed's last collection succeeded.
// *feeds.Runner implements it.
type HealthReporter interface {
	Health() map[string]bool
}

// Model is the root bubbletea model.
type Model struct {
	board   *board.Board
	it      *board.Interaction
	store   *data.Store
	theme   theme.Theme
	scale   geometry.Scale
	bounded bool
	updates <-chan feeds.Update
	tick    time.Duration
	log     *slog.Logger
	zones   *zone.Manager
	feeds   HealthReporter
	cache   *contentCache

	keys    KeyMap
	help    help.Model
	sidebar sidebar
	view    widgets.ViewState

	width, height int
	focused       string
	keyGuides     []snap.Guide
	status        string
	searching     bool
}

// New builds the model. cfg.Board is required.
func New(cfg Config) Model {
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTickInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Zones == nil {
		cfg.Zones = zone.New()
	}
	if cfg.Store == nil {
		cfg.Store = data.NewStore(data.StoreConfig{})
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = theme.Get(theme.DefaultName)
	}
	return Model{
		board:   cfg.Board,
		it:      board.NewInteraction(cfg.Board),
		store:   cfg.Store,
		theme:   cfg.Theme,
		scale:   cfg.Scale,
		bounded: cfg.Bounded,
		updates: cfg.Updates,
		tick:    cfg.Tick,
		log:     cfg.Logger,
		zones:   cfg.Zones,
		feeds:   cfg.Feeds,
		cache:   newContentCache(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		sidebar: newSidebar(cfg.Board.Registry(), cfg.Collapsed),
		view:    widgets.ViewState{Range: data.Range24h, Theme: cfg.Theme},
	}
}

// Init starts the tick and, when feeds are running, the update listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(m.tick), WaitForUpdate(m.updates))
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Focused returns the id of the focused instance, or "".
func (m Model) Focused() string { return m.focused }

// Range returns the selected line-graph range.
func (m Model) Range() data.Range { return m.view.Range }

// Theme returns the active theme.
func (m Model) Theme() theme.Theme { return m.theme }

// Status returns the status bar message.
func (m Model) Status() string { return m.status }

// Guides returns the snap guides currently drawn.
func (m Model) Guides() []snap.Guide {
	if m.it.Active() {
		return m.it.Guides()
	}
	return m.keyGuides
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.syncBounds()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case TickEvent:
		if st := m.store.Prune(msg.Time); st.PointsRemoved > 0 {
			m.log.Debug("pruned store", "points", st.PointsRemoved, "series", st.SeriesPruned)
		}
		return m, TickCmd(m.tick)

	case DataUpdateEvent:
		if msg.Err != nil {
			m.status = fmt.Sprintf("%s: %v", msg.Source, msg.Err)
			m.log.Warn("feed failed", "feed", msg.Source, "error", msg.Err)
		}
		return m, WaitForUpdate(m.updates)

	case FocusEvent:
		m.focus(msg.ID)
		return m, nil

	case ThemeChangeEvent:
		if t, ok := theme.Lookup(msg.Theme); ok {
			m.theme = t
			m.view.Theme = t
			m.status = "theme " + t.Name
		}
		return m, nil
	}
	return m, nil
}

// syncBounds confines the board to the visible canvas, when enabled.
func (m *Model) syncBounds() {
	if !m.bounded {
		return
	}
	area := m.boardArea()
	w, h := m.scale.ToPixels(area.Width, area.Height)
	m.board.SetBounds(geometry.Rect{Width: w, Height: h})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg), nil
	}
	k := m.keys
	if !key.Matches(msg, k.Up, k.Down, k.Left, k.Right) {
		m.keyGuides = nil
	}

	switch {
	case key.Matches(msg, k.Quit):
		m.it.Cancel()
		return m, tea.Quit

	case key.Matches(msg, k.Cancel):
		switch {
		case m.it.Active():
			m.it.Cancel()
			m.status = "cancelled"
		case m.help.ShowAll:
			m.help.ShowAll = false
		case m.sidebar.query != "":
			m.sidebar.setQuery("")
		default:
			m.focus("")
		}

	case key.Matches(msg, k.NextWidget):
		m.cycleFocus(1)
	case key.Matches(msg, k.PrevWidget):
		m.cycleFocus(-1)

	case key.Matches(msg, k.Up):
		m.nudge(0, -m.scale.StepY())
	case key.Matches(msg, k.Down):
		m.nudge(0, m.scale.StepY())
	case key.Matches(msg, k.Left):
		m.nudge(-m.scale.StepX(), 0)
	case key.Matches(msg, k.Right):
		m.nudge(m.scale.StepX(), 0)

	case key.Matches(msg, k.GrowUp):
		m.resizeBy(0, -m.scale.StepY())
	case key.Matches(msg, k.GrowDown):
		m.resizeBy(0, m.scale.StepY())
	case key.Matches(msg, k.GrowLeft):
		m.resizeBy(-m.scale.StepX(), 0)
	case key.Matches(msg, k.GrowRight):
		m.resizeBy(m.scale.StepX(), 0)

	case key.Matches(msg, k.Remove):
		if m.focused != "" {
			m.remove(m.focused)
		}

	case key.Matches(msg, k.RangePrev):
		m.view.Range = m.view.Range.Prev()
		m.status = m.view.Range.Label()
	case key.Matches(msg, k.RangeNext):
		m.view.Range = m.view.Range.Next()
		m.status = m.view.Range.Label()

	case key.Matches(msg, k.SidebarUp):
		m.sidebar.move(-1)
	case key.Matches(msg, k.SidebarDown):
		m.sidebar.move(1)
	case key.Matches(msg, k.Add):
		if it, ok := m.sidebar.current(); ok {
			m.activate(it)
		}
	case key.Matches(msg, k.ToggleGroup):
		if it, ok := m.sidebar.current(); ok {
			m.sidebar.toggle(it.group)
		}
	case key.Matches(msg, k.Search):
		m.searching = true
		m.sidebar.setQuery("")

	case key.Matches(msg, k.Theme):
		return m, m.nextTheme()
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
	case tea.KeyEsc:
		m.searching = false
		m.sidebar.setQuery("")
	case tea.KeyBackspace:
		if q := []rune(m.sidebar.query); len(q) > 0 {
			m.sidebar.setQuery(string(q[:len(q)-1]))
		}
	case tea.KeySpace:
		m.sidebar.setQuery(m.sidebar.query + " ")
	case tea.KeyRunes:
		m.sidebar.setQuery(m.sidebar.query + string(msg.Runes))
	}
	return m
}

// activate runs a sidebar row: headers fold, kinds are added (or focused
// when already on the board).
func (m *Model) activate(it sidebarItem) {
	if it.header() {
		m.sidebar.toggle(it.group)
		return
	}
	placed := m.board.HasKind(it.key)
	in, err := m.board.AddByKind(it.key)
	if err != nil {
		m.status = err.Error()
		return
	}
	if placed {
		m.status = it.title + " is already on the board"
	} else {
		m.status = "added " + it.title
		m.log.Info("widget added", "kind", it.key, "id", in.ID)
	}
	m.focus(in.ID)
}

func (m *Model) remove(id string) {
	in, ok := m.board.Get(id)
	if !ok || !m.board.Remove(id) {
		return
	}
	if m.focused == id {
		m.focused = ""
		m.keyGuides = nil
	}
	m.status = "removed " + m.title(in.Kind)
	m.log.Info("widget removed", "kind", in.Kind, "id", id)
}

func (m *Model) nudge(dx, dy float64) {
	if m.focused == "" {
		return
	}
	if res, ok := m.board.Nudge(m.focused, dx, dy); ok {
		m.keyGuides = res.Guides
	}
}

func (m *Model) resizeBy(dw, dh float64) {
	if m.focused == "" {
		return
	}
	m.board.ResizeBy(m.focused, dw, dh)
}

func (m *Model) nextTheme() tea.Cmd {
	names := theme.Names()
	next := names[0]
	for i, n := range names {
		if n == m.theme.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return func() tea.Msg { return ThemeChangeEvent{Theme: next} }
}

func (m Model) title(kind string) string {
	if def, ok := m.board.Registry().Lookup(kind); ok {
		return def.Title
	}
	return kind
}
