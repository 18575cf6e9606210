package feeds

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startRunner(t *testing.T, r *Registry) (*Runner, <-chan Update) {
	t.Helper()
	updates := make(chan Update, DefaultUpdateBufferSize)
	runner := NewRunner(r, updates)
	if err := runner.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(runner.Stop)
	return runner, updates
}

func waitUpdate(t *testing.T, updates <-chan Update) Update {
	t.Helper()
	select {
	case u := <-updates:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
	}
	return Update{}
}

// --- Registry ---

func statusOf(t *testing.T, r *Registry, name string) Status {
	t.Helper()
	for _, s := range r.AllStatus() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no status for feed %q", name)
	return Status{}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(NewMockFeed("a", time.Second)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(NewMockFeed("a", time.Second)); err == nil {
		t.Fatal("duplicate Register succeeded")
	}
	if s := statusOf(t, r, "a"); !s.Healthy || s.RunCount != 0 {
		t.Errorf("initial status = %+v", s)
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockFeed("charlie", time.Second))
	_ = r.Register(NewMockFeed("alpha", time.Second))

	if diff := cmp.Diff([]string{"alpha", "charlie"}, r.List()); diff != "" {
		t.Errorf("List (-want +got):\n%s", diff)
	}
	if len(r.AllStatus()) != 2 {
		t.Errorf("AllStatus = %v", r.AllStatus())
	}
}

// --- Runner ---

func TestRunnerDeliversUpdates(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockFeed("fast", 20*time.Millisecond, WithData("ping")))
	_, updates := startRunner(t, r)

	u := waitUpdate(t, updates)
	if u.Source != "fast" || u.Data != "ping" || u.Err != nil || u.Timestamp.IsZero() {
		t.Errorf("update = %+v", u)
	}
}

func TestRunnerReportsErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	_ = r.Register(NewMockFeed("failing", 20*time.Millisecond, WithError(boom)))
	_ = r.Register(NewMockFeed("working", 20*time.Millisecond, WithData(1)))
	runner, updates := startRunner(t, r)

	seen := map[string]bool{}
	for len(seen) < 2 {
		u := waitUpdate(t, updates)
		seen[u.Source] = true
		if u.Source == "failing" && !errors.Is(u.Err, boom) {
			t.Errorf("failing update err = %v", u.Err)
		}
	}
	health := runner.Health()
	if health["failing"] || !health["working"] {
		t.Errorf("Health = %v", health)
	}
	s := statusOf(t, r, "failing")
	if s.ErrorCount == 0 || s.LastError == nil {
		t.Errorf("failing status = %+v", s)
	}
}

func TestRunnerStartTwice(t *testing.T) {
	r := NewRegistry()
	runner, _ := startRunner(t, r)
	if err := runner.Start(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start err = %v", err)
	}
}

func TestRunnerStopUnblocksCollect(t *testing.T) {
	r := NewRegistry()
	entered := make(chan struct{}, 1)
	_ = r.Register(NewMockFeed("slow", 10*time.Millisecond,
		WithCollectFunc(func(ctx context.Context) (interface{}, error) {
			select {
			case entered <- struct{}{}:
			default:
			}
			<-ctx.Done()
			return nil, ctx.Err()
		}),
	))

	updates := make(chan Update, 1)
	runner := NewRunner(r, updates)
	if err := runner.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("feed never ran")
	}

	done := make(chan struct{})
	go func() {
		runner.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestRunnerStopsWhenConsumerStalls(t *testing.T) {
	r := NewRegistry()
	feed := NewMockFeed("chatty", time.Millisecond, WithData(0))
	_ = r.Register(feed)

	// Unbuffered and never read: the feed goroutine blocks on send.
	updates := make(chan Update)
	runner := NewRunner(r, updates)
	_ = runner.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	runner.Stop()

	before := feed.CallCount()
	time.Sleep(20 * time.Millisecond)
	if feed.CallCount() != before {
		t.Error("feed kept collecting after Stop")
	}
}

func TestRunnerParentContextCancel(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockFeed("f", 5*time.Millisecond))
	updates := make(chan Update, DefaultUpdateBufferSize)
	runner := NewRunner(r, updates)

	ctx, cancel := context.WithCancel(context.Background())
	_ = runner.Start(ctx)
	cancel()
	runner.Stop()
}

func TestStopWithoutStart(t *testing.T) {
	NewRunner(NewRegistry(), nil).Stop()
}

// --- Analytics ---

func TestAnalyticsFeedExtendsHourly(t *testing.T) {
	store := data.NewStore(data.StoreConfig{})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data.SeedAnalytics(store, now, rand.New(rand.NewSource(3)))

	f := NewAnalyticsFeed(store, time.Second, rand.New(rand.NewSource(4)))
	got, err := f.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	s := got.(Sample)
	if !s.Time.Equal(now.Add(time.Hour)) {
		t.Errorf("sample time = %v, want %v", s.Time, now.Add(time.Hour))
	}
	if s.Value < data.HourlyValue(13, 0) || s.Value >= data.HourlyValue(13, 1) {
		t.Errorf("sample value %v off curve", s.Value)
	}

	hourly, _ := store.GetSeries(data.SeriesHourly)
	if hourly.Len() != data.HourlyPoints || hourly.Last() != s.Value {
		t.Errorf("hourly len=%d last=%v", hourly.Len(), hourly.Last())
	}
}

func TestAnalyticsFeedEmptyStore(t *testing.T) {
	store := data.NewStore(data.StoreConfig{})
	f := NewAnalyticsFeed(store, time.Second, nil)
	if _, err := f.Collect(context.Background()); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if _, _, ok := store.GetLatest(data.SeriesHourly); !ok {
		t.Error("no point written")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Collect(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled Collect err = %v", err)
	}
}

// --- Host ---

func TestHostFeed(t *testing.T) {
	store := data.NewStore(data.StoreConfig{})
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var mu sync.Mutex
	next := 10.0
	f := NewHostFeed(store, time.Second,
		WithClock(func() time.Time { return at }),
		WithSampler(func(context.Context) (float64, error) {
			mu.Lock()
			defer mu.Unlock()
			next += 5
			return next, nil
		}),
	)
	if f.Name() != HostName || f.Interval() != time.Second {
		t.Errorf("identity = %s %v", f.Name(), f.Interval())
	}

	got, err := f.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if s := got.(Sample); s.Value != 15 || s.Series != registry.SeriesHostCPU || !s.Time.Equal(at) {
		t.Errorf("sample = %+v", s)
	}
	if _, v, _ := store.GetLatest(registry.SeriesHostCPU); v != 15 {
		t.Errorf("stored %v", v)
	}

	// The sample ages out once it is hostHistory intervals old.
	if st := store.Prune(at.Add(hostHistory * time.Second)); st.PointsRemoved != 1 {
		t.Errorf("prune after history window removed %d points, want 1", st.PointsRemoved)
	}
}

func TestHostFeedSamplerError(t *testing.T) {
	store := data.NewStore(data.StoreConfig{})
	boom := errors.New("no /proc")
	f := NewHostFeed(store, time.Second, WithSampler(func(context.Context) (float64, error) {
		return 0, boom
	}))
	if _, err := f.Collect(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if _, _, ok := store.GetLatest(registry.SeriesHostCPU); ok {
		t.Error("point written despite error")
	}
}
