package data

import (
	"fmt"
	"time"
)

// Series names the analytics line graph reads from.
const (
	SeriesHourly = "hourly"
	SeriesDaily  = "daily"
)

// Range is a selectable time window of the analytics line graph. The first
// range reads the hourly series; the others read the tail of the daily one.
type Range int

const (
	Range24h Range = iota
	Range7d
	Range30d
	Range90d
	Range365d
)

type rangeInfo struct {
	label  string
	series string
	points int
}

var ranges = [...]rangeInfo{
	Range24h:  {"Last 24 Hours (Hourly)", SeriesHourly, 24},
	Range7d:   {"Last 7 Days", SeriesDaily, 7},
	Range30d:  {"Last 30 Days", SeriesDaily, 30},
	Range90d:  {"Last 90 Days", SeriesDaily, 90},
	Range365d: {"Last Year", SeriesDaily, 365},
}

// Ranges lists every range in slider order.
func Ranges() []Range {
	return []Range{Range24h, Range7d, Range30d, Range90d, Range365d}
}

func (r Range) valid() bool {
	return r >= 0 && int(r) < len(ranges)
}

// Label is the text shown above the graph.
func (r Range) Label() string {
	if !r.valid() {
		return fmt.Sprintf("Range(%d)", int(r))
	}
	return ranges[r].label
}

// String implements fmt.Stringer.
func (r Range) String() string { return r.Label() }

// Points is how many of the newest samples the range shows.
func (r Range) Points() int {
	if !r.valid() {
		return 0
	}
	return ranges[r].points
}

// Series returns the name of the series the range reads.
func (r Range) Series() string {
	if !r.valid() {
		return SeriesHourly
	}
	return ranges[r].series
}

// Next moves the slider right, stopping at the last range.
func (r Range) Next() Range {
	if r >= Range365d {
		return Range365d
	}
	if r < Range24h {
		return Range24h
	}
	return r + 1
}

// Prev moves the slider left, stopping at the first range.
func (r Range) Prev() Range {
	if r <= Range24h {
		return Range24h
	}
	if r > Range365d {
		return Range365d
	}
	return r - 1
}

// Start returns the oldest timestamp r covers when its newest sample is at
// end. Hourly ranges step back in hours and daily ones in calendar days, the
// same way the seed data is stamped.
func (r Range) Start(end time.Time) time.Time {
	back := r.Points() - 1
	if r.Series() == SeriesDaily {
		return end.AddDate(0, 0, -back)
	}
	return end.Add(-time.Duration(back) * time.Hour)
}

// Window returns the points of the analytics graph for r: every sample of
// the range's series from r.Start up to the newest one. Gaps in the series
// show as fewer points rather than older ones.
func (s *Store) Window(r Range) (*Snapshot, bool) {
	name := r.Series()
	end, _, ok := s.GetLatest(name)
	if !ok {
		return s.GetRange(name, time.Time{}, time.Time{})
	}
	return s.GetRange(name, r.Start(end), end)
}
