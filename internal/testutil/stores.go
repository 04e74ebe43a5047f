package testutil

import (
	"context"
	"fmt"
	"sync"

	"rally-results-service/internal/content"
	"rally-results-service/internal/domain/rally"
)

// StubStore implements content.Store from canned data and records every call.
type StubStore struct {
	Rallies          map[string]rally.Rally
	RallyErr         error
	Live             []rally.LiveResult
	LiveErr          error
	Standings        []rally.StandingsEntry
	StandingsErr     error
	StageResults     map[string]rally.StageResult
	StageErr         error
	Championships    []rally.Championship
	ChampionshipsErr error

	mu    sync.Mutex
	calls map[string][]string
}

var _ content.Store = (*StubStore)(nil)

// Calls returns the keys passed to op, in call order.
func (s *StubStore) Calls(op string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls[op]...)
}

func (s *StubStore) record(op, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string][]string)
	}
	s.calls[op] = append(s.calls[op], key)
}

func (s *StubStore) FetchRallyBySlug(ctx context.Context, slug string) (rally.Rally, error) {
	s.record(content.OpRally, slug)
	if s.RallyErr != nil {
		return rally.Rally{}, s.RallyErr
	}
	r, ok := s.Rallies[slug]
	if !ok {
		return rally.Rally{}, fmt.Errorf("rally %q: %w", slug, content.ErrNotFound)
	}
	return r, nil
}

// FetchLiveResults returns every canned live result, like a store that ignores the filter.
func (s *StubStore) FetchLiveResults(ctx context.Context, rallyID string) ([]rally.LiveResult, error) {
	s.record(content.OpLiveResults, rallyID)
	if s.LiveErr != nil {
		return nil, s.LiveErr
	}
	return s.Live, nil
}

func (s *StubStore) FetchStandings(ctx context.Context) ([]rally.StandingsEntry, error) {
	s.record(content.OpStandings, "")
	if s.StandingsErr != nil {
		return nil, s.StandingsErr
	}
	return s.Standings, nil
}

func (s *StubStore) FetchStageResult(ctx context.Context, stageID string) (rally.StageResult, error) {
	s.record(content.OpStageResult, stageID)
	if s.StageErr != nil {
		return rally.StageResult{}, s.StageErr
	}
	if res, ok := s.StageResults[stageID]; ok {
		return res, nil
	}
	return rally.StageResult{StageID: stageID, Results: []rally.DriverResult{}}, nil
}

func (s *StubStore) FetchChampionships(ctx context.Context) ([]rally.Championship, error) {
	s.record(content.OpChampionships, "")
	if s.ChampionshipsErr != nil {
		return nil, s.ChampionshipsErr
	}
	return s.Championships, nil
}
