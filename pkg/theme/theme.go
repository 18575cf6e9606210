// Package theme holds the named colour palettes the board is drawn with.
// Built-in themes are registered at init; more can be loaded from TOML
// files.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is a complete palette. Colours are "#rrggbb" strings; the mono
// theme leaves them empty, which renders uncoloured.
type Theme struct {
	Name string

	// Chrome
	Background string
	Foreground string
	Dim        string
	Accent     string
	Header     string
	Sidebar    string

	// Widgets
	Border      string
	BorderFocus string
	Title       string
	Guide       string
	BorderStyle string // "rounded", "single", "double", "heavy", "dashed"
	FocusStyle  string

	// Charts
	Line    string
	Palette []string

	// Status bar and help
	StatusOK    string
	StatusError string
	HelpKey     string
	HelpDesc    string
}

// DefaultName is the theme used when none is configured.
const DefaultName = "dark"

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	for _, t := range thBuiltins() {
		Register(t)
	}
}

// Register adds t under its lowercase name, replacing any theme of the same
// name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// Lookup returns the theme called name.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	if ok {
		t.Palette = append([]string(nil), t.Palette...)
	}
	return t, ok
}

// Get returns the theme called name, falling back to the default theme.
func Get(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	t, _ := Lookup(DefaultName)
	return t
}

// Names lists every registered theme, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteColor returns the i-th chart colour, cycling through the palette.
func (t Theme) PaletteColor(i int) string {
	if len(t.Palette) == 0 || i < 0 {
		return ""
	}
	return t.Palette[i%len(t.Palette)]
}
