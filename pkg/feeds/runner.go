package feeds

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultUpdateBufferSize is a reasonable capacity for the updates channel.
const DefaultUpdateBufferSize = 64

// ErrAlreadyRunning is returned by Start on a started runner.
var ErrAlreadyRunning = errors.New("feed runner already running")

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets the logger used for collection failures.
func WithRunnerLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner polls every registered feed on its own ticker.
type Runner struct {
	reg     *Registry
	updates chan<- Update
	log     *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewRunner returns a runner delivering results to updates.
func NewRunner(reg *Registry, updates chan<- Update, opts ...RunnerOption) *Runner {
	r := &Runner{
		reg:     reg,
		updates: updates,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches one goroutine per feed. Each feed collects immediately and
// then on every tick until ctx is cancelled or Stop is called. Feeds
// registered after Start are not picked up.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.group != nil {
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range r.reg.snapshot() {
		f := f
		g.Go(func() error {
			r.loop(gctx, f)
			return nil
		})
	}
	r.cancel = cancel
	r.group = g
	return nil
}

// Stop cancels every feed goroutine and waits for them to return. It is
// safe to call on a runner that was never started.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, g := r.cancel, r.group
	r.cancel, r.group = nil, nil
	r.mu.Unlock()

	if g == nil {
		return
	}
	cancel()
	_ = g.Wait()
}

// Health reports whether each feed's last cycle succeeded.
func (r *Runner) Health() map[string]bool {
	out := make(map[string]bool)
	for _, s := range r.reg.AllStatus() {
		out[s.Name] = s.Healthy
	}
	return out
}

func (r *Runner) loop(ctx context.Context, f Feed) {
	interval := f.Interval()
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		data, err := r.collect(ctx, f)
		if ctx.Err() != nil {
			return
		}
		u := Update{Source: f.Name(), Data: data, Timestamp: time.Now(), Err: err}
		select {
		case r.updates <- u:
		case <-ctx.Done():
			return
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) collect(ctx context.Context, f Feed) (interface{}, error) {
	start := time.Now()
	data, err := f.Collect(ctx)
	latency := time.Since(start)

	r.reg.updateStatus(f.Name(), func(s *Status) {
		s.LastRun = start
		s.LastLatency = latency
		s.RunCount++
		s.LastError = err
		s.Healthy = err == nil
		if err != nil {
			s.ErrorCount++
		}
	})
	if err != nil && ctx.Err() == nil {
		r.log.Warn("feed collection failed", "feed", f.Name(), "error", err)
	}
	return data, err
}
