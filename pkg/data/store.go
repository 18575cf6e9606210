// Package data holds the datasets widgets render: time series for line
// graphs and named category sets for pie and bar charts.
//
// Series are stored structure-of-arrays style, with timestamps and values in
// parallel slices, so a graph can walk one metric without touching the rest.
package data

import (
	"sort"
	"sync"
	"time"
)

// StoreConfig controls a Store.
type StoreConfig struct {
	// MaxPoints caps every series unless overridden per series. Zero means
	// 1000, enough for a year of daily points.
	MaxPoints int

	// Retention is how long points are kept by Prune. Zero keeps points
	// until MaxPoints pushes them out.
	Retention time.Duration
}

func (c StoreConfig) withDefaults() StoreConfig {
	if c.MaxPoints <= 0 {
		c.MaxPoints = 1000
	}
	return c
}

type series struct {
	times     []time.Time
	values    []float64
	maxPoints int
	retention time.Duration
}

// Snapshot is a copy of a series that callers may keep and modify.
type Snapshot struct {
	Name   string
	Times  []time.Time
	Values []float64
}

// Len returns the number of points.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// Min returns the smallest value, or 0 when empty.
func (s *Snapshot) Min() float64 {
	if s.Len() == 0 {
		return 0
	}
	m := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value, or 0 when empty.
func (s *Snapshot) Max() float64 {
	if s.Len() == 0 {
		return 0
	}
	m := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Last returns the newest value, or 0 when empty.
func (s *Snapshot) Last() float64 {
	if s.Len() == 0 {
		return 0
	}
	return s.Values[len(s.Values)-1]
}

// Avg returns the mean value, or 0 when empty.
func (s *Snapshot) Avg() float64 {
	if s.Len() == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Store is safe for concurrent use: feeds write from their own goroutines
// while the UI reads.
type Store struct {
	mu         sync.RWMutex
	cfg        StoreConfig
	series     map[string]*series
	categories map[string][]Category
	version    uint64
}

// NewStore returns an empty store.
func NewStore(cfg StoreConfig) *Store {
	return &Store{
		cfg:        cfg.withDefaults(),
		series:     make(map[string]*series),
		categories: make(map[string][]Category),
	}
}

// Version increases on every write. Renderers compare it to skip redraws.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// AddPoint appends one point to name, creating the series if needed.
func (s *Store) AddPoint(name string, t time.Time, v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ser := s.getOrCreate(name)
	ser.times = append(ser.times, t)
	ser.values = append(ser.values, v)
	s.trim(ser)
	s.version++
}

// AddPoints appends points in bulk. Mismatched slice lengths are ignored.
func (s *Store) AddPoints(name string, times []time.Time, values []float64) {
	if len(times) != len(values) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ser := s.getOrCreate(name)
	ser.times = append(ser.times, times...)
	ser.values = append(ser.values, values...)
	s.trim(ser)
	s.version++
}

// SetMaxPoints overrides the point cap for one series. Zero restores the
// store default.
func (s *Store) SetMaxPoints(name string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ser := s.getOrCreate(name)
	ser.maxPoints = n
	s.trim(ser)
}

// SetRetention overrides the retention for one series. Zero restores the
// store default.
func (s *Store) SetRetention(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(name).retention = d
}

// GetSeries returns a copy of the whole series.
func (s *Store) GetSeries(name string) (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ser, ok := s.series[name]
	if !ok {
		return nil, false
	}
	return snapshot(name, ser.times, ser.values), true
}

// GetRange returns the points of name with timestamps in [start, end].
func (s *Store) GetRange(name string, start, end time.Time) (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ser, ok := s.series[name]
	if !ok {
		return nil, false
	}
	lo := sort.Search(len(ser.times), func(i int) bool { return !ser.times[i].Before(start) })
	hi := sort.Search(len(ser.times), func(i int) bool { return ser.times[i].After(end) })
	if lo >= hi {
		return &Snapshot{Name: name}, true
	}
	return snapshot(name, ser.times[lo:hi], ser.values[lo:hi]), true
}

// GetLatestN returns the newest n points of name.
func (s *Store) GetLatestN(name string, n int) (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ser, ok := s.series[name]
	if !ok {
		return nil, false
	}
	if n < 0 {
		n = 0
	}
	if n > len(ser.values) {
		n = len(ser.values)
	}
	from := len(ser.values) - n
	return snapshot(name, ser.times[from:], ser.values[from:]), true
}

// GetLatest returns the newest point of name.
func (s *Store) GetLatest(name string) (time.Time, float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ser, ok := s.series[name]
	if !ok || len(ser.values) == 0 {
		return time.Time{}, 0, false
	}
	n := len(ser.values) - 1
	return ser.times[n], ser.values[n], true
}

func (s *Store) getOrCreate(name string) *series {
	ser, ok := s.series[name]
	if !ok {
		ser = &series{}
		s.series[name] = ser
	}
	return ser
}

// trim drops the oldest points beyond the series cap. Callers hold the
// write lock.
func (s *Store) trim(ser *series) {
	limit := ser.maxPoints
	if limit <= 0 {
		limit = s.cfg.MaxPoints
	}
	if excess := len(ser.values) - limit; excess > 0 {
		ser.times = ser.times[excess:]
		ser.values = ser.values[excess:]
	}
}

func snapshot(name string, times []time.Time, values []float64) *Snapshot {
	snap := &Snapshot{Name: name}
	if len(values) > 0 {
		snap.Times = append([]time.Time(nil), times...)
		snap.Values = append([]float64(nil), values...)
	}
	return snap
}
