package rallyview

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"rally-results-service/internal/content"
	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/testutil"
)

const acropolis = "rally-acropolis-2024"

func acropolisStore() *testutil.StubStore {
	r := testutil.SampleRally("r-acropolis", acropolis, "ss1", "ss2", "ss3")
	return &testutil.StubStore{
		Rallies: map[string]rally.Rally{acropolis: r},
		Live: []rally.LiveResult{
			{ID: "lr-1", RallyID: "r-acropolis", Results: []rally.DriverResult{testutil.SampleDriverRow(1, "Ogier")}},
			{ID: "lr-other", RallyID: "r-cyprus", Results: []rally.DriverResult{testutil.SampleDriverRow(1, "Rovanpera")}},
		},
		Standings: []rally.StandingsEntry{
			testutil.SampleStandings("r-cyprus", "Rovanpera"),
			testutil.SampleStandings("r-acropolis", "Ogier"),
		},
		StageResults: map[string]rally.StageResult{
			"ss1": testutil.SampleStageResult("ss1", "Tanak", "Ogier"),
			"ss3": testutil.SampleStageResult("ss3", "Neuville"),
		},
	}
}

func mount(t *testing.T, store content.Store, slug string, in Input) *Controller {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c := NewController(store, nil)
	if err := c.Mount(ctx, slug, in); err != nil {
		t.Fatalf("mount: %v", err)
	}
	return c
}

func waitAll(t *testing.T, c *Controller) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestMountSelectsFirstStageAndShowsItsResults(t *testing.T) {
	store := acropolisStore()
	c := mount(t, store, acropolis, Input{})

	s := c.Snapshot()
	if s.Page != PageDetail {
		t.Fatalf("expected detail page, got %s", s.Page)
	}
	if s.Selection.StageID != "ss1" || s.Selection.ActiveTab != TabStages {
		t.Fatalf("expected ss1 selected on stages tab, got %+v", s.Selection)
	}
	if s.ResultsView != StageTable || s.Stage.Data.StageID != "ss1" {
		t.Fatalf("expected ss1 stage table, got %s for %q", s.ResultsView, s.Stage.Data.StageID)
	}
	if got := store.Calls(content.OpStageResult); !reflect.DeepEqual(got, []string{"ss1"}) {
		t.Fatalf("expected only ss1 to be fetched, got %v", got)
	}
	if got := store.Calls(content.OpLiveResults); !reflect.DeepEqual(got, []string{"r-acropolis"}) {
		t.Fatalf("expected live results keyed by rally id, got %v", got)
	}
}

func TestMountFirstStageWithoutResultsIsEmptyNotAnotherStage(t *testing.T) {
	store := acropolisStore()
	delete(store.StageResults, "ss1")

	s := mount(t, store, acropolis, Input{}).Snapshot()
	if s.ResultsView != StageEmpty {
		t.Fatalf("expected stage empty for ss1, got %s", s.ResultsView)
	}
	if s.Stage.Data.HasRows() {
		t.Fatalf("expected no rows leaked from other stages, got %+v", s.Stage.Data)
	}
}

func TestClickStageSwitchesTabAndFetchesStage(t *testing.T) {
	store := acropolisStore()
	c := mount(t, store, acropolis, Input{})

	c.ClickStage(context.Background(), "ss2")
	waitAll(t, c)

	s := c.Snapshot()
	if s.Selection.StageID != "ss2" || s.Selection.ActiveTab != TabResults {
		t.Fatalf("expected ss2 on results tab, got %+v", s.Selection)
	}
	if s.ResultsView != StageEmpty {
		t.Fatalf("expected empty stage view for ss2, got %s", s.ResultsView)
	}
	if len(s.RallyResults) == 0 {
		t.Fatalf("expected aggregate results to exist so precedence is exercised")
	}
}

func TestMountAppliesRequestedSelection(t *testing.T) {
	store := acropolisStore()

	s := mount(t, store, acropolis, Input{StageID: "ss3", FromStages: true}).Snapshot()
	if s.Selection.StageID != "ss3" || s.Selection.ActiveTab != TabResults {
		t.Fatalf("expected stage table click to select ss3 on results, got %+v", s.Selection)
	}
	if got := store.Calls(content.OpStageResult); !reflect.DeepEqual(got, []string{"ss3"}) {
		t.Fatalf("expected default stage never fetched when a pick is given, got %v", got)
	}

	s = mount(t, acropolisStore(), acropolis, Input{StageID: "ss2", Tab: TabStandings}).Snapshot()
	if s.Selection.StageID != "ss2" || s.Selection.ActiveTab != TabStandings {
		t.Fatalf("expected picker selection to keep requested tab, got %+v", s.Selection)
	}
}

func TestMountIgnoresStageOfAnotherRally(t *testing.T) {
	store := acropolisStore()
	store.StageResults["cyprus-ss7"] = testutil.SampleStageResult("cyprus-ss7", "Rovanpera")

	c := mount(t, store, acropolis, Input{StageID: "cyprus-ss7", FromStages: true})
	s := c.Snapshot()
	if s.Selection.StageID != "ss1" || s.Selection.ActiveTab != TabStages {
		t.Fatalf("expected foreign stage ignored in favour of ss1, got %+v", s.Selection)
	}
	if got := store.Calls(content.OpStageResult); !reflect.DeepEqual(got, []string{"ss1"}) {
		t.Fatalf("expected only ss1 fetched, got %v", got)
	}

	c.SelectStage(context.Background(), "cyprus-ss7")
	c.ClickStage(context.Background(), "cyprus-ss7")
	waitAll(t, c)
	if s := c.Snapshot(); s.Selection.StageID != "ss1" || s.Selection.ActiveTab != TabStages {
		t.Fatalf("expected selection unchanged by foreign picks, got %+v", s.Selection)
	}
	if got := store.Calls(content.OpStageResult); !reflect.DeepEqual(got, []string{"ss1"}) {
		t.Fatalf("expected no fetch for foreign stage, got %v", got)
	}
}

func TestMountRallyFailureIsNotFound(t *testing.T) {
	store := acropolisStore()
	store.RallyErr = errors.New("network down")

	s := mount(t, store, acropolis, Input{}).Snapshot()
	if s.Page != PageNotFound {
		t.Fatalf("expected not found, got %s", s.Page)
	}
	if n := len(store.Calls(content.OpLiveResults)) + len(store.Calls(content.OpStageResult)) + len(store.Calls(content.OpStandings)); n != 0 {
		t.Fatalf("expected no dependent fetches, got %d", n)
	}
}

func TestMountUnknownSlugIsNotFound(t *testing.T) {
	s := mount(t, acropolisStore(), "rally-nowhere", Input{}).Snapshot()
	if s.Page != PageNotFound {
		t.Fatalf("expected not found, got %s", s.Page)
	}
}

func TestStandingsFailureStaysInItsSection(t *testing.T) {
	store := acropolisStore()
	store.StandingsErr = errors.New("standings down")

	s := mount(t, store, acropolis, Input{}).Snapshot()
	if s.Page != PageDetail {
		t.Fatalf("expected detail page, got %s", s.Page)
	}
	if s.StandingsView != StandingsError {
		t.Fatalf("expected standings error, got %s", s.StandingsView)
	}
	if s.ResultsView != StageTable || len(s.Rally.Data.Stages) != 3 {
		t.Fatalf("expected results and stages unaffected, got %s", s.ResultsView)
	}
}

func TestMountAbsentSlugNeverFetches(t *testing.T) {
	store := acropolisStore()

	s := mount(t, store, "  ", Input{StageID: "ss1"}).Snapshot()
	if s.Page != PageNotFound {
		t.Fatalf("expected not found, got %s", s.Page)
	}
	for _, op := range []string{content.OpRally, content.OpLiveResults, content.OpStandings, content.OpStageResult} {
		if calls := store.Calls(op); len(calls) != 0 {
			t.Fatalf("expected no %s fetches, got %v", op, calls)
		}
	}
	if s.Rally.Loading || s.Live.Loading || s.Stage.Loading {
		t.Fatalf("expected neutral hooks, got %+v", s)
	}
}

func TestSelectionChangesDoNotRecomputeDerivations(t *testing.T) {
	c := mount(t, acropolisStore(), acropolis, Input{})

	first := c.Snapshot()
	if len(first.RallyResults) != 1 || first.RallyResults[0].ID != "lr-1" {
		t.Fatalf("expected filtered rally results, got %+v", first.RallyResults)
	}
	if !first.StandingsFound || first.RallyStandings.Standings[0].Driver != "Ogier" {
		t.Fatalf("expected acropolis standings, got %+v", first.RallyStandings)
	}

	c.SelectStage(context.Background(), "ss3")
	waitAll(t, c)
	c.SetTab(TabStandings)
	c.Snapshot()
	c.Snapshot()

	if results, standings := c.DerivationCalls(); results != 1 || standings != 1 {
		t.Fatalf("expected derivations computed once, got results=%d standings=%d", results, standings)
	}
}

func TestRallyWithoutStagesFallsBackToAggregateResults(t *testing.T) {
	store := acropolisStore()
	r := store.Rallies[acropolis]
	r.Stages = nil
	store.Rallies[acropolis] = r

	s := mount(t, store, acropolis, Input{}).Snapshot()
	if s.ResultsView != RallyTables {
		t.Fatalf("expected rally tables, got %s", s.ResultsView)
	}

	store.Live = nil
	s = mount(t, store, acropolis, Input{}).Snapshot()
	if s.ResultsView != NoResults {
		t.Fatalf("expected no results, got %s", s.ResultsView)
	}
}
