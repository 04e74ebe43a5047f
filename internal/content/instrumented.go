package content

import (
	"context"
	"log/slog"
	"time"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/logging"
	"rally-results-service/internal/metrics"
)

// instrumentedStore records metrics and logs for every content-store call.
// It never retries: a failed fetch is terminal for that fetch cycle.
type instrumentedStore struct {
	inner   Store
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedStore wraps inner with metrics and logging under the given store name.
func NewInstrumentedStore(inner Store, name string, logger *slog.Logger, recorder *metrics.Recorder) Store {
	return &instrumentedStore{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (s *instrumentedStore) FetchRallyBySlug(ctx context.Context, slug string) (rally.Rally, error) {
	return observe(ctx, s, OpRally, func() (rally.Rally, error) {
		return s.inner.FetchRallyBySlug(ctx, slug)
	}, slog.String(logging.FieldSlug, slug))
}

func (s *instrumentedStore) FetchLiveResults(ctx context.Context, rallyID string) ([]rally.LiveResult, error) {
	return observe(ctx, s, OpLiveResults, func() ([]rally.LiveResult, error) {
		return s.inner.FetchLiveResults(ctx, rallyID)
	}, slog.String(logging.FieldRallyID, rallyID))
}

func (s *instrumentedStore) FetchStandings(ctx context.Context) ([]rally.StandingsEntry, error) {
	return observe(ctx, s, OpStandings, func() ([]rally.StandingsEntry, error) {
		return s.inner.FetchStandings(ctx)
	})
}

func (s *instrumentedStore) FetchStageResult(ctx context.Context, stageID string) (rally.StageResult, error) {
	return observe(ctx, s, OpStageResult, func() (rally.StageResult, error) {
		return s.inner.FetchStageResult(ctx, stageID)
	}, slog.String(logging.FieldStageID, stageID))
}

func (s *instrumentedStore) FetchChampionships(ctx context.Context) ([]rally.Championship, error) {
	return observe(ctx, s, OpChampionships, func() ([]rally.Championship, error) {
		return s.inner.FetchChampionships(ctx)
	})
}

func observe[T any](ctx context.Context, s *instrumentedStore, op string, call func() (T, error), attrs ...any) (T, error) {
	if s.inner == nil {
		var zero T
		logging.Warn(ctx, s.logger, "content store unavailable", slog.String(logging.FieldOperation, op))
		return zero, ErrStoreUnavailable
	}

	start := s.now()
	out, err := call()
	elapsed := s.now().Sub(start)
	metricErr := err
	if IsNotFound(err) {
		metricErr = nil
	}
	s.metrics.RecordFetch(s.name, op, elapsed, metricErr)

	attrs = append(attrs,
		slog.String(logging.FieldStore, s.name),
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	switch {
	case err == nil:
		logging.Debug(ctx, s.logger, "content fetch complete", attrs...)
	case IsNotFound(err):
		logging.Info(ctx, s.logger, "content not found", attrs...)
	default:
		if rl, ok := AsRateLimitError(err); ok {
			s.metrics.RecordRateLimit(s.name, op, rl.RetryAfter)
		}
		logging.Error(ctx, s.logger, "content fetch failed", err, attrs...)
	}
	return out, err
}
