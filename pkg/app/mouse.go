package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/tui"
)

// handleMouse maps terminal mouse events onto the board. A press picks the
// topmost frame under the pointer and, depending on the part hit, removes
// it or starts a drag or resize; motion feeds the running interaction and
// release commits it.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	area := m.boardArea()
	cx, cy := msg.X-area.X, msg.Y-area.Y
	px, py := m.scale.ToPixels(cx, cy)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if i, it, ok := m.sidebarHit(msg); ok {
			m.sidebar.cursor = i
			m.activate(it)
			return m
		}
		if !area.Contains(msg.X, msg.Y) {
			return m
		}
		m.keyGuides = nil
		f, part := tui.HitTest(m.frames(false), cx, cy)
		var err error
		switch part {
		case tui.PartNone:
			m.focus("")
			return m
		case tui.PartClose:
			m.remove(f.ID)
			return m
		case tui.PartCorner:
			err = m.it.BeginResize(f.ID, board.HandleCorner, px, py)
		case tui.PartRight:
			err = m.it.BeginResize(f.ID, board.HandleRight, px, py)
		case tui.PartBottom:
			err = m.it.BeginResize(f.ID, board.HandleBottom, px, py)
		default:
			err = m.it.BeginDrag(f.ID, px, py)
		}
		if err != nil {
			m.log.Debug("interaction not started", "id", f.ID, "error", err)
			return m
		}
		m.focused = f.ID

	case tea.MouseActionMotion:
		if !m.it.Active() {
			return m
		}
		if err := m.it.Move(px, py); err != nil {
			m.log.Debug("move ignored", "error", err)
		}

	case tea.MouseActionRelease:
		if in, ok := m.it.End(); ok {
			m.status = fmt.Sprintf("%s at %.0f,%.0f  %.0fx%.0f", m.title(in.Kind), in.X, in.Y, in.Width, in.Height)
		}
	}
	return m
}

// sidebarHit returns the sidebar row whose zone contains the press.
func (m Model) sidebarHit(msg tea.MouseMsg) (int, sidebarItem, bool) {
	for i, it := range m.sidebar.items() {
		if m.zones.Get(it.zoneID()).InBounds(msg) {
			return i, it, true
		}
	}
	return 0, sidebarItem{}, false
}
