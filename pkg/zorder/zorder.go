// Package zorder allocates stacking values for board widgets. Every
// allocation is strictly greater than all previous ones, so the widget that
// was touched last always renders on top.
package zorder

import "sync/atomic"

// DefaultSeed is the starting value of a new Manager. The first allocation
// returns DefaultSeed+1.
const DefaultSeed = 100

// Manager hands out monotonically increasing z values. It is owned by a
// single board; two boards never share a counter. The zero value starts at 0.
type Manager struct {
	top atomic.Int64
}

// New returns a Manager whose first allocation is seed+1.
func New(seed int) *Manager {
	m := &Manager{}
	m.top.Store(int64(seed))
	return m
}

// Next increments the counter and returns the new top value.
func (m *Manager) Next() int {
	return int(m.top.Add(1))
}

// Top returns the most recently allocated value (or the seed).
func (m *Manager) Top() int {
	return int(m.top.Load())
}

// Observe raises the counter to at least z, so a value written from outside
// the Manager is never handed out again or undercut by Next.
func (m *Manager) Observe(z int) {
	v := int64(z)
	for {
		cur := m.top.Load()
		if v <= cur || m.top.CompareAndSwap(cur, v) {
			return
		}
	}
}
