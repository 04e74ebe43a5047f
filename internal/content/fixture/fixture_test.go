package fixture

import (
	"context"
	"testing"
	"time"

	"rally-results-service/internal/content"
	"rally-results-service/internal/testutil"
)

func fixedStore() *Store {
	s := New()
	s.now = testutil.NowAt(testutil.MustParseRFC3339("2024-09-05T12:30:00Z"))
	return s
}

func TestFetchRallyBySlugReturnsDeterministicRally(t *testing.T) {
	s := fixedStore()

	r, err := s.FetchRallyBySlug(context.Background(), AcropolisSlug)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r.ID != AcropolisID || len(r.Stages) != 3 {
		t.Fatalf("unexpected rally %+v", r)
	}
	if want := time.Date(2024, 9, 5, 8, 0, 0, 0, time.UTC); !r.Date.Equal(want) {
		t.Fatalf("expected start %s, got %s", want, r.Date)
	}
	if id, _ := r.FirstStageID(); id != "ss1" {
		t.Fatalf("expected ss1 as first stage, got %s", id)
	}
}

func TestFetchRallyBySlugUnknownIsNotFound(t *testing.T) {
	if _, err := fixedStore().FetchRallyBySlug(context.Background(), "rally-nowhere"); !content.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFetchStageResultOnlyFirstStagePublished(t *testing.T) {
	s := fixedStore()

	ss1, err := s.FetchStageResult(context.Background(), "ss1")
	if err != nil || !ss1.HasRows() {
		t.Fatalf("expected rows for ss1, got %+v err=%v", ss1, err)
	}
	ss2, err := s.FetchStageResult(context.Background(), "ss2")
	if err != nil || ss2.HasRows() {
		t.Fatalf("expected empty result for ss2, got %+v err=%v", ss2, err)
	}
}

func TestFetchStandingsIncludesOtherRallies(t *testing.T) {
	entries, err := fixedStore().FetchStandings(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 || entries[1].RallyID != AcropolisID {
		t.Fatalf("unexpected standings %+v", entries)
	}
}

func TestFetchLiveResultsScopedToRally(t *testing.T) {
	s := fixedStore()
	live, _ := s.FetchLiveResults(context.Background(), AcropolisID)
	if len(live) != 1 || len(live[0].Results) != 3 {
		t.Fatalf("unexpected live results %+v", live)
	}
	other, _ := s.FetchLiveResults(context.Background(), CyprusID)
	if len(other) != 0 {
		t.Fatalf("expected no live results for other rally, got %+v", other)
	}
}

func TestFetchChampionshipsUsesClockYear(t *testing.T) {
	champs, err := fixedStore().FetchChampionships(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(champs) != 1 || champs[0].Slug != "wrc-2024" {
		t.Fatalf("unexpected championships %+v", champs)
	}
}
