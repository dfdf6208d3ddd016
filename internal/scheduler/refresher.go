package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/statusboard/internal/domain"
	"github.com/hamed0406/statusboard/internal/feed"
	"github.com/hamed0406/statusboard/internal/metrics"
	"github.com/hamed0406/statusboard/internal/probe"
	"github.com/hamed0406/statusboard/internal/view"
)

// ErrorMessage is the fixed page-level message for a failed primary
// fetch. Transport and parse failures read the same to the user.
const ErrorMessage = "Unable to fetch service status. Please try again later."

// FeedFetcher is what the refresher needs from the feed client.
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]domain.ServiceStatus, error)
}

// Refresher drives the refresh cycle: an immediate pass on start, one
// per interval after that, plus manual triggers. Each cycle runs the
// feed fetch and the secondary probe concurrently, waits for both, and
// publishes exactly one snapshot — the renderer never sees a
// half-updated cycle.
type Refresher struct {
	Logger      *zap.Logger
	Feed        FeedFetcher
	Probe       probe.Checker
	ProbeURL    string
	Monitored   []domain.MonitoredService
	Store       *view.Store
	Metrics     *metrics.Metrics
	Transitions *Transitions // optional
	Interval    time.Duration
	Timeout     time.Duration
	Now         func() time.Time

	refreshCh chan struct{}

	// lastUpdate is the time of the last successful cycle; only the
	// Run goroutine touches it.
	lastUpdate time.Time
}

func NewRefresher(
	logger *zap.Logger,
	fd FeedFetcher,
	checker probe.Checker,
	probeURL string,
	store *view.Store,
	m *metrics.Metrics,
	interval time.Duration,
	timeout time.Duration,
) *Refresher {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Refresher{
		Logger:    logger,
		Feed:      fd,
		Probe:     checker,
		ProbeURL:  probeURL,
		Monitored: domain.Monitored(),
		Store:     store,
		Metrics:   m,
		Interval:  interval,
		Timeout:   timeout,
		Now:       time.Now,
		refreshCh: make(chan struct{}, 1),
	}
}

// Refresh requests an immediate cycle. Non-blocking; if a manual cycle
// is already pending the request coalesces into it.
func (r *Refresher) Refresh() {
	select {
	case r.refreshCh <- struct{}{}:
	default:
	}
}

// Run does an immediate pass, then one per tick or manual trigger.
// Stops when ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("refresher_stopped")
			return
		case <-t.C:
			r.runOnce(ctx)
		case <-r.refreshCh:
			r.runOnce(ctx)
		}
	}
}

func (r *Refresher) runOnce(ctx context.Context) {
	var (
		wg       sync.WaitGroup
		services []domain.ServiceStatus
		feedErr  error
		probeRes domain.ProbeResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, r.Timeout)
		defer cancel()

		start := time.Now()
		raw, err := r.Feed.Fetch(cctx)
		r.Metrics.ObserveFetch("feed", time.Since(start).Seconds())
		if err != nil {
			feedErr = err
			return
		}
		services = feed.Filter(raw, r.Monitored)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, r.Timeout)
		defer cancel()

		start := time.Now()
		// probe failures are absorbed into the zero result, never
		// into page-level error state
		probeRes = r.Probe.Check(cctx, r.ProbeURL)
		r.Metrics.ObserveFetch("probe", time.Since(start).Seconds())
	}()
	wg.Wait()

	// a cycle that settles after teardown is dropped, not published
	if ctx.Err() != nil {
		r.Logger.Info("refresh_dropped", zap.Error(ctx.Err()))
		return
	}

	now := r.Now()

	if feedErr != nil {
		r.Metrics.ObserveCycle("failed")
		r.Logger.Warn("refresh_failed",
			zap.Error(feedErr),
			zap.Time("last_update", r.lastUpdate),
		)
		r.Store.Publish(view.Assemble(nil, probeRes, domain.PhaseFailed, ErrorMessage, r.lastUpdate, now))
		return
	}

	r.lastUpdate = now
	online := 0
	for _, s := range services {
		if s.Online {
			online++
		}
	}
	r.Metrics.ObserveCycle("succeeded")
	r.Metrics.SetLastRefresh(now.Unix())
	r.Metrics.SetServicesOnline(online)
	r.Metrics.SetProbeRoundtrip(probeRes.LatencyMS)

	r.Store.Publish(view.Assemble(services, probeRes, domain.PhaseSucceeded, "", now, now))
	r.Logger.Debug("refresh_succeeded",
		zap.Int("services", len(services)),
		zap.Int("online", online),
		zap.Bool("probe_online", probeRes.Online),
	)

	if r.Transitions != nil {
		r.Transitions.Observe(ctx, services)
	}
}
