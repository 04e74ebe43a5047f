package rallyview

import (
	"testing"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/fetch"
	"rally-results-service/internal/testutil"
)

func TestRallyResultsIsStableFilter(t *testing.T) {
	r := testutil.SampleRally("r1", "slug")
	live := []rally.LiveResult{
		{ID: "a", RallyID: "r1"},
		{ID: "b", RallyID: "r2"},
		{ID: "c", RallyID: "r1"},
		{ID: "d", RallyID: ""},
	}

	got := RallyResults(r, live)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected [a c] in source order, got %+v", got)
	}
	if empty := RallyResults(r, nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestRallyStandingsFirstMatchWins(t *testing.T) {
	r := testutil.SampleRally("r1", "slug")
	entries := []rally.StandingsEntry{
		testutil.SampleStandings("r2", "Other"),
		testutil.SampleStandings("r1", "First"),
		testutil.SampleStandings("r1", "Second"),
	}

	got, ok := RallyStandings(r, entries)
	if !ok || got.Standings[0].Driver != "First" {
		t.Fatalf("expected first matching entry, got %+v (ok=%v)", got, ok)
	}
	if _, ok := RallyStandings(testutil.SampleRally("r9", "x"), entries); ok {
		t.Fatalf("expected no match for unknown rally")
	}
}

func TestDeriverMemoizesOnVersions(t *testing.T) {
	var d Deriver
	rs := fetch.State[rally.Rally]{Data: testutil.SampleRally("r1", "slug"), Version: 2}
	live := fetch.State[[]rally.LiveResult]{Data: []rally.LiveResult{{ID: "a", RallyID: "r1"}}, Version: 2}
	standings := fetch.State[[]rally.StandingsEntry]{Data: []rally.StandingsEntry{testutil.SampleStandings("r1", "X")}, Version: 2}

	for i := 0; i < 3; i++ {
		d.Results(rs, live)
		d.Standings(rs, standings)
	}
	if results, st := d.Calls(); results != 1 || st != 1 {
		t.Fatalf("expected one computation each, got results=%d standings=%d", results, st)
	}

	live.Version = 3
	live.Data = nil
	if got := d.Results(rs, live); len(got) != 0 {
		t.Fatalf("expected recompute with new live data, got %+v", got)
	}
	d.Standings(rs, standings)
	if results, st := d.Calls(); results != 2 || st != 1 {
		t.Fatalf("expected only results to recompute, got results=%d standings=%d", results, st)
	}

	rs.Version = 3
	d.Results(rs, live)
	d.Standings(rs, standings)
	if results, st := d.Calls(); results != 3 || st != 2 {
		t.Fatalf("expected rally change to recompute both, got results=%d standings=%d", results, st)
	}
}
