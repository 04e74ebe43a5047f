package content

import (
	"context"

	"rally-results-service/internal/domain/rally"
)

// Operation names used for logging and metrics.
const (
	OpRally         = "rally"
	OpLiveResults   = "live_results"
	OpStandings     = "standings"
	OpStageResult   = "stage_result"
	OpChampionships = "championships"
)

// Store is the typed view of the hosted content store.
//
// FetchRallyBySlug returns ErrNotFound when no rally matches. FetchStageResult
// returns a zero StageResult, not an error, when the stage has no published
// classification yet.
type Store interface {
	FetchRallyBySlug(ctx context.Context, slug string) (rally.Rally, error)
	FetchLiveResults(ctx context.Context, rallyID string) ([]rally.LiveResult, error)
	FetchStandings(ctx context.Context) ([]rally.StandingsEntry, error)
	FetchStageResult(ctx context.Context, stageID string) (rally.StageResult, error)
	FetchChampionships(ctx context.Context) ([]rally.Championship, error)
}
