package feeds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"

	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

// HostName is the registered name of the host load feed.
const HostName = "host"

// hostHistory is how many CPU samples the host load graph keeps.
const hostHistory = 120

// SampleFunc returns the aggregate CPU utilisation in percent.
type SampleFunc func(ctx context.Context) (float64, error)

// HostFeed samples overall CPU utilisation into the host.cpu series.
type HostFeed struct {
	store    *data.Store
	interval time.Duration
	sample   SampleFunc
	now      func() time.Time
}

// HostOption configures a HostFeed.
type HostOption func(*HostFeed)

// WithSampler replaces the gopsutil sampler, for tests.
func WithSampler(fn SampleFunc) HostOption {
	return func(f *HostFeed) { f.sample = fn }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) HostOption {
	return func(f *HostFeed) { f.now = now }
}

// NewHostFeed returns a feed writing CPU samples to store. Samples older
// than hostHistory intervals are pruned with the store.
func NewHostFeed(store *data.Store, interval time.Duration, opts ...HostOption) *HostFeed {
	f := &HostFeed{store: store, interval: interval, sample: cpuPercent, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	store.SetMaxPoints(registry.SeriesHostCPU, hostHistory)
	if interval > 0 {
		store.SetRetention(registry.SeriesHostCPU, hostHistory*interval)
	}
	return f
}

func (f *HostFeed) Name() string            { return HostName }
func (f *HostFeed) Interval() time.Duration { return f.interval }

// Collect records one CPU sample.
func (f *HostFeed) Collect(ctx context.Context) (interface{}, error) {
	v, err := f.sample(ctx)
	if err != nil {
		return nil, fmt.Errorf("host: cpu sample: %w", err)
	}
	ts := f.now()
	f.store.AddPoint(registry.SeriesHostCPU, ts, v)
	return Sample{Series: registry.SeriesHostCPU, Time: ts, Value: v}, nil
}

// cpuPercent measures utilisation since the previous call, so the first
// sample after startup may read 0.
func cpuPercent(ctx context.Context) (float64, error) {
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(pct) == 0 {
		return 0, errors.New("no cpu data")
	}
	return pct[0], nil
}
