package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/foundationdata/widgetboard/pkg/feeds"
)

// TickCmd returns a Cmd that sends a TickEvent after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// WaitForUpdate returns a Cmd that blocks on the next feed update and
// delivers it as a DataUpdateEvent. It yields nil once ch is closed, which
// ends the chain.
func WaitForUpdate(ch <-chan feeds.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return DataUpdateEvent{
			Source:    u.Source,
			Data:      u.Data,
			Err:       u.Err,
			Timestamp: u.Timestamp,
		}
	}
}
