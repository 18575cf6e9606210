package feeds

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"gitlab.com/foundationdata/widgetboard/pkg/data"
)

// AnalyticsName is the registered name of the analytics feed.
const AnalyticsName = "analytics"

// AnalyticsFeed extends the hourly hiring-demand series by one hour per
// cycle, following the same curve the seed data uses.
type AnalyticsFeed struct {
	store    *data.Store
	interval time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAnalyticsFeed returns a feed writing to store. A nil rng uses a source
// seeded from the clock.
func NewAnalyticsFeed(store *data.Store, interval time.Duration, rng *rand.Rand) *AnalyticsFeed {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AnalyticsFeed{store: store, interval: interval, rng: rng}
}

func (f *AnalyticsFeed) Name() string            { return AnalyticsName }
func (f *AnalyticsFeed) Interval() time.Duration { return f.interval }

// Collect appends the next hourly point, stamped one hour after the newest
// one. An empty series starts at the current hour. The curve phase follows
// the hour of day.
func (f *AnalyticsFeed) Collect(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	noise := f.rng.Float64()
	f.mu.Unlock()

	ts, _, ok := f.store.GetLatest(data.SeriesHourly)
	if ok {
		ts = ts.Add(time.Hour)
	} else {
		ts = time.Now().Truncate(time.Hour)
	}

	v := data.HourlyValue(ts.Hour(), noise)
	f.store.AddPoint(data.SeriesHourly, ts, v)
	return Sample{Series: data.SeriesHourly, Time: ts, Value: v}, nil
}
