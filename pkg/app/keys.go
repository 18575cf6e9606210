package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the board's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	NextWidget  key.Binding
	PrevWidget  key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	GrowUp      key.Binding
	GrowDown    key.Binding
	GrowLeft    key.Binding
	GrowRight   key.Binding
	Remove      key.Binding
	RangePrev   key.Binding
	RangeNext   key.Binding
	SidebarUp   key.Binding
	SidebarDown key.Binding
	Add         key.Binding
	ToggleGroup key.Binding
	Search      key.Binding
	Theme       key.Binding
	Help        key.Binding
	Cancel      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextWidget:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		PrevWidget:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev widget")),
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down")),
		Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "move left")),
		Right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "move right")),
		GrowUp:      key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "shorter")),
		GrowDown:    key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "taller")),
		GrowLeft:    key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "narrower")),
		GrowRight:   key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "wider")),
		Remove:      key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		RangePrev:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "shorter range")),
		RangeNext:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "longer range")),
		SidebarUp:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "sidebar up")),
		SidebarDown: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "sidebar down")),
		Add:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add widget")),
		ToggleGroup: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "fold group")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWidget, k.Add, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextWidget, k.PrevWidget, k.Remove, k.Cancel},
		{k.Up, k.Down, k.Left, k.Right},
		{k.GrowUp, k.GrowDown, k.GrowLeft, k.GrowRight},
		{k.SidebarUp, k.SidebarDown, k.Add, k.ToggleGroup, k.Search},
		{k.RangePrev, k.RangeNext, k.Theme, k.Help, k.Quit},
	}
}
