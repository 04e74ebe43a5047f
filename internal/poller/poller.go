package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/logging"
	"rally-results-service/internal/metrics"
)

const (
	defaultInterval = time.Minute
	readyFailures   = 3
)

// Source is the slice of the content store the poller reads.
type Source interface {
	FetchChampionships(ctx context.Context) ([]rally.Championship, error)
}

// Sink receives each successfully fetched championship snapshot.
type Sink interface {
	ReplaceChampionships(champs []rally.Championship)
}

// Poller refreshes championships on an interval. Its status doubles as the
// content store health probe behind /ready.
type Poller struct {
	source   Source
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailures
}

// New constructs a Poller with sane defaults.
func New(source Source, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		source:   source,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(ctx, p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Warm the championships on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(context.Background(), p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(context.Background(), p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	_, _ = p.Refresh(ctx)
}

// Refresh runs one fetch cycle immediately and returns what was fetched. A
// failed cycle leaves the previous snapshot in place.
func (p *Poller) Refresh(ctx context.Context) ([]rally.Championship, error) {
	start := p.now()
	p.recordAttempt(start)

	champs, err := p.source.FetchChampionships(ctx)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProbeCycle(elapsed, err)
	if err != nil {
		logging.Error(ctx, p.logger, "poller fetch failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return nil, err
	}

	if p.sink != nil {
		p.sink.ReplaceChampionships(champs)
	}
	p.recordSuccess(start)
	logging.Info(ctx, p.logger, "poller refreshed championships",
		logging.FieldCount, len(champs),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return champs, nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
