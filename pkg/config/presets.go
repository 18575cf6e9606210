package config

import "sort"

// Board presets name the widgets placed when the board starts.
const (
	PresetEmpty     = "empty"
	PresetProfile   = "profile"
	PresetAnalytics = "analytics"
	PresetFull      = "full"
)

var presets = map[string][]string{
	PresetEmpty:     nil,
	PresetProfile:   {"Skills", "Salary", "Roles", "Locations"},
	PresetAnalytics: {"lineGraph", "pieChart", "barChart"},
	PresetFull: {
		"Skills", "Salary", "Roles", "Locations", "Reports",
		"lineGraph", "pieChart", "barChart",
	},
}

// PresetKinds returns the widget keys placed by the named preset, in
// placement order. Unknown names place nothing.
func PresetKinds(name string) []string {
	kinds := presets[name]
	out := make([]string, len(kinds))
	copy(out, kinds)
	return out
}

// PresetNames lists the known presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
