package app

import (
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/tui"
)

// sidebarItem is one visible row of the sidebar: a group header or a
// widget kind inside an expanded group.
type sidebarItem struct {
	group string
	key   string // empty for headers
	title string
}

func (it sidebarItem) header() bool { return it.key == "" }

func (it sidebarItem) zoneID() string {
	if it.header() {
		return "group:" + it.group
	}
	return "widget:" + it.key
}

// sidebar is the "Add Widgets" list. Groups fold independently; a filter
// query shows every group that has a match, folded or not.
type sidebar struct {
	groups    []registry.Group
	defs      []registry.Definition
	titles    map[string]string
	collapsed map[string]bool
	cursor    int
	query     string
}

func newSidebar(reg *registry.Registry, collapsed []string) sidebar {
	s := sidebar{
		groups:    reg.Groups(),
		titles:    make(map[string]string),
		collapsed: make(map[string]bool),
	}
	for _, k := range reg.Keys() {
		d := reg.MustLookup(k)
		s.defs = append(s.defs, d)
		s.titles[k] = d.Title
	}
	for _, g := range collapsed {
		s.collapsed[g] = true
	}
	return s
}

// items lists the visible rows in display order.
func (s *sidebar) items() []sidebarItem {
	var match map[string]bool
	if s.query != "" {
		match = make(map[string]bool)
		for _, k := range tui.FilterDefinitions(s.defs, s.query) {
			match[k] = true
		}
	}

	var out []sidebarItem
	for _, g := range s.groups {
		var keys []string
		for _, k := range g.Keys {
			if match == nil || match[k] {
				keys = append(keys, k)
			}
		}
		if match != nil && len(keys) == 0 {
			continue
		}
		out = append(out, sidebarItem{group: g.Name, title: g.Name})
		if match == nil && s.collapsed[g.Name] {
			continue
		}
		for _, k := range keys {
			out = append(out, sidebarItem{group: g.Name, key: k, title: s.titles[k]})
		}
	}
	return out
}

// current returns the row under the cursor, clamping the cursor first.
func (s *sidebar) current() (sidebarItem, bool) {
	items := s.items()
	if len(items) == 0 {
		s.cursor = 0
		return sidebarItem{}, false
	}
	s.cursor = min(max(s.cursor, 0), len(items)-1)
	return items[s.cursor], true
}

func (s *sidebar) move(delta int) {
	s.cursor += delta
	s.current()
}

// toggle folds or unfolds group and keeps the cursor on its header.
func (s *sidebar) toggle(group string) {
	s.collapsed[group] = !s.collapsed[group]
	for i, it := range s.items() {
		if it.header() && it.group == group {
			s.cursor = i
			return
		}
	}
}

// setQuery changes the filter and moves the cursor to the first match.
func (s *sidebar) setQuery(q string) {
	s.query = q
	s.cursor = 0
	for i, it := range s.items() {
		if !it.header() {
			s.cursor = i
			return
		}
	}
}

func (s *sidebar) folded(group string) bool {
	return s.collapsed[group]
}
