package feeds

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MockFeed is a configurable Feed for tests.
type MockFeed struct {
	name     string
	interval time.Duration

	mu   sync.RWMutex
	data interface{}
	err  error

	calls atomic.Int64

	// CollectFunc, when set, replaces the canned data and error.
	CollectFunc func(ctx context.Context) (interface{}, error)
}

// MockOption configures a MockFeed.
type MockOption func(*MockFeed)

// WithData sets what Collect returns.
func WithData(data interface{}) MockOption {
	return func(m *MockFeed) { m.data = data }
}

// WithError sets the error Collect returns.
func WithError(err error) MockOption {
	return func(m *MockFeed) { m.err = err }
}

// WithCollectFunc installs a custom Collect.
func WithCollectFunc(fn func(ctx context.Context) (interface{}, error)) MockOption {
	return func(m *MockFeed) { m.CollectFunc = fn }
}

// NewMockFeed returns a mock feed polled every interval.
func NewMockFeed(name string, interval time.Duration, opts ...MockOption) *MockFeed {
	m := &MockFeed{name: name, interval: interval}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockFeed) Name() string            { return m.name }
func (m *MockFeed) Interval() time.Duration { return m.interval }

// SetError changes the returned error.
func (m *MockFeed) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Collect counts the call and returns the configured result.
func (m *MockFeed) Collect(ctx context.Context) (interface{}, error) {
	m.calls.Add(1)
	if m.CollectFunc != nil {
		return m.CollectFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data, m.err
}

// CallCount returns how many times Collect ran.
func (m *MockFeed) CallCount() int64 {
	return m.calls.Load()
}
