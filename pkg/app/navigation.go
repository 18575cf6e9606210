package app

// focus moves keyboard focus to id and raises it. An empty or unknown id
// clears focus and with it any guides left by keyboard moves.
func (m *Model) focus(id string) {
	m.keyGuides = nil
	if id == "" || !m.board.BringToFront(id) {
		m.focused = ""
		return
	}
	m.focused = id
}

// cycleFocus steps focus through the instances in insertion order,
// wrapping at either end. With nothing focused, forward starts at the first
// instance and backward at the last.
func (m *Model) cycleFocus(step int) {
	list := m.board.List()
	if len(list) == 0 {
		m.focus("")
		return
	}
	idx := -1
	for i, in := range list {
		if in.ID == m.focused {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(list) - 1
	default:
		idx = (idx + step + len(list)) % len(list)
	}
	m.focus(list[idx].ID)
}
