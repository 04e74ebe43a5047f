package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	staleDiscards   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters per content-store operation and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordFetch counts a content-store call for the operation and keeps its latency.
func (r *Recorder) RecordFetch(store, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(operation, func(s *operationStats) {
		s.calls++
		s.lastCallLatency = duration
		if err != nil {
			s.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordFetch(store, operation, duration, err)
	}
}

// RecordRateLimit tracks a throttled content-store response and its Retry-After.
func (r *Recorder) RecordRateLimit(store, operation string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.update(operation, func(s *operationStats) {
		s.rateLimitHits++
		if retryAfter > 0 {
			s.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(store, operation, retryAfter)
	}
}

// RecordStaleDiscard counts a response dropped because a newer key was requested.
func (r *Recorder) RecordStaleDiscard(operation string) {
	if r == nil {
		return
	}

	r.update(operation, func(s *operationStats) { s.staleDiscards++ })
	if r.otel != nil {
		r.otel.recordStaleDiscard(operation)
	}
}

// Snapshot is a copy of the stats recorded for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	StaleDiscards   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the operation.
func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		StaleDiscards:   stats.staleDiscards,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPageView counts rendered rally pages by their top-level view.
func (r *Recorder) RecordPageView(view string) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPageView(view)
}

// RecordProbeCycle tracks content-store probe cycles and errors.
func (r *Recorder) RecordProbeCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordProbe(duration, err)
}

func (r *Recorder) update(operation string, fn func(*operationStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{}
		r.stats[operation] = stats
	}
	fn(stats)
}
