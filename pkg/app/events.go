// Package app is the bubbletea front end of the board: the root model, its
// key map, the "Add Widgets" sidebar and the mouse handling that turns
// presses and drags into board interactions.
package app

import "time"

// DataUpdateEvent carries the outcome of one feed collection into the
// update loop. The feed has already written its samples to the data store;
// the event only triggers a redraw and reports failures.
type DataUpdateEvent struct {
	Source    string
	Data      interface{}
	Err       error
	Timestamp time.Time
}

// TickEvent drives the periodic store pruning and redraw.
type TickEvent struct {
	Time time.Time
}

// FocusEvent moves keyboard focus to the instance with ID and raises it.
type FocusEvent struct {
	ID string
}

// ThemeChangeEvent switches the active colour theme.
type ThemeChangeEvent struct {
	Theme string
}
