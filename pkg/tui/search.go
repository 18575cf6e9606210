package tui

import (
	"strings"

	"gitlab.com/foundationdata/widgetboard/pkg/components"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

// RenderSearchBar renders the sidebar filter prompt that replaces the
// status bar while filtering: a "/" prefix, the query and a cursor.
func RenderSearchBar(query string, width int) string {
	if width <= 0 {
		return ""
	}
	return components.Fit("/"+query+"_", width)
}

// FilterDefinitions returns the keys of defs whose key or title contains
// query, case-insensitively, in their original order. An empty query
// matches everything.
func FilterDefinitions(defs []registry.Definition, query string) []string {
	lower := strings.ToLower(strings.TrimSpace(query))
	var keys []string
	for _, d := range defs {
		if lower == "" ||
			strings.Contains(strings.ToLower(d.Key), lower) ||
			strings.Contains(strings.ToLower(d.Title), lower) {
			keys = append(keys, d.Key)
		}
	}
	return keys
}
