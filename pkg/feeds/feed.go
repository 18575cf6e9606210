// Package feeds runs the live data sources behind the board's charts. Each
// Feed is polled on its own interval by a Runner, which fans the results
// into one updates channel consumed by the UI event loop.
package feeds

import (
	"context"
	"time"
)

// Feed is a periodically polled data source.
type Feed interface {
	// Name identifies the feed, e.g. "analytics".
	Name() string

	// Collect runs one cycle. Feeds write their samples into the data store
	// themselves and return a summary for the update message.
	Collect(ctx context.Context) (interface{}, error)

	// Interval is the polling period.
	Interval() time.Duration
}

// Status is the runtime state of one feed.
type Status struct {
	Name        string
	Healthy     bool
	LastRun     time.Time
	LastError   error
	RunCount    int64
	ErrorCount  int64
	LastLatency time.Duration
}

// Update carries the result of one collection cycle.
type Update struct {
	Source    string
	Data      interface{}
	Timestamp time.Time
	Err       error
}

// Sample is the summary most feeds return: the series written and the point
// appended to it.
type Sample struct {
	Series string
	Time   time.Time
	Value  float64
}
