package rallyview

import (
	"context"
	"strings"
	"sync"

	"rally-results-service/internal/content"
	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/fetch"
	"rally-results-service/internal/metrics"
)

// Input is the user selection carried by a request.
type Input struct {
	StageID string
	Tab     Tab
	// FromStages marks a pick made from the stage table.
	FromStages bool
}

// Snapshot is everything the presentation layer reads for one render.
type Snapshot struct {
	Slug      string
	Selection Selection

	Rally     fetch.State[rally.Rally]
	Live      fetch.State[[]rally.LiveResult]
	Standings fetch.State[[]rally.StandingsEntry]
	Stage     fetch.State[rally.StageResult]

	RallyResults   []rally.LiveResult
	RallyStandings rally.StandingsEntry
	StandingsFound bool

	Page          PageView
	ResultsView   ResultsView
	StandingsView StandingsView
}

// Controller is one mounted rally page. It owns the four fetch hooks, the
// selection state and the memoized projections. Create one per render.
type Controller struct {
	rally     *fetch.Hook[string, rally.Rally]
	live      *fetch.Hook[string, []rally.LiveResult]
	standings *fetch.Hook[struct{}, []rally.StandingsEntry]
	stage     *fetch.Hook[string, rally.StageResult]

	mu        sync.Mutex
	slug      string
	selection Selection
	deriver   Deriver
}

// NewController wires the hooks to store.
func NewController(store content.Store, recorder *metrics.Recorder) *Controller {
	// Standings are unkeyed; the hook runs on a constant key.
	fetchStandings := func(ctx context.Context, _ struct{}) ([]rally.StandingsEntry, error) {
		return store.FetchStandings(ctx)
	}
	return &Controller{
		rally:     fetch.New(content.OpRally, store.FetchRallyBySlug, recorder),
		live:      fetch.New(content.OpLiveResults, store.FetchLiveResults, recorder),
		standings: fetch.New(content.OpStandings, fetchStandings, recorder),
		stage:     fetch.New(content.OpStageResult, store.FetchStageResult, recorder),
		selection: NewSelection(),
	}
}

// Mount loads the rally for slug, then its live results and standings in
// parallel, resolves the stage selection from in and loads that stage. It
// returns once every started fetch has settled, or with ctx's error.
//
// An absent slug or a rally that cannot be loaded issues no further fetches.
func (c *Controller) Mount(ctx context.Context, slug string, in Input) error {
	slug = strings.TrimSpace(slug)
	c.mu.Lock()
	c.slug = slug
	c.selection = NewSelection()
	c.mu.Unlock()

	if slug == "" {
		c.rally.Reset()
		c.live.Reset()
		c.stage.Reset()
		return nil
	}

	c.rally.Set(ctx, slug)
	if err := c.rally.Wait(ctx); err != nil {
		return err
	}
	r := c.rally.State()
	if r.Err != nil || r.Data.ID == "" {
		c.live.Reset()
		c.stage.Reset()
		return nil
	}

	c.live.Set(ctx, r.Data.ID)
	c.standings.Set(ctx, struct{}{})

	c.mu.Lock()
	c.selection.ApplyDefault(r.Data)
	if in.Tab != "" {
		c.selection.SetTab(in.Tab)
	}
	if _, ok := r.Data.Stage(in.StageID); ok {
		if in.FromStages {
			c.selection.ClickStage(in.StageID)
		} else {
			c.selection.SelectStage(in.StageID)
		}
	}
	c.mu.Unlock()

	c.syncStage(ctx)
	return c.Wait(ctx)
}

// SelectStage applies a stage-picker selection and fetches that stage.
// Ids that are not stages of the loaded rally are ignored.
func (c *Controller) SelectStage(ctx context.Context, id string) {
	if !c.ownsStage(id) {
		return
	}
	c.mu.Lock()
	c.selection.SelectStage(id)
	c.mu.Unlock()
	c.syncStage(ctx)
}

// ClickStage applies a stage-table click and fetches that stage.
func (c *Controller) ClickStage(ctx context.Context, id string) {
	if !c.ownsStage(id) {
		return
	}
	c.mu.Lock()
	c.selection.ClickStage(id)
	c.mu.Unlock()
	c.syncStage(ctx)
}

// SetTab switches the active tab. No fetch is involved.
func (c *Controller) SetTab(t Tab) {
	c.mu.Lock()
	c.selection.SetTab(t)
	c.mu.Unlock()
}

// Wait blocks until all hooks have settled.
func (c *Controller) Wait(ctx context.Context) error {
	waiters := []func(context.Context) error{c.rally.Wait, c.live.Wait, c.standings.Wait, c.stage.Wait}
	for _, wait := range waiters {
		if err := wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot captures the hook states, derived projections and dispatch
// decisions for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	slug, sel := c.slug, c.selection
	c.mu.Unlock()

	s := Snapshot{
		Slug:      slug,
		Selection: sel,
		Rally:     c.rally.State(),
		Live:      c.live.State(),
		Standings: c.standings.State(),
		Stage:     c.stage.State(),
	}
	s.RallyResults = c.deriver.Results(s.Rally, s.Live)
	s.RallyStandings, s.StandingsFound = c.deriver.Standings(s.Rally, s.Standings)

	s.Page = DispatchPage(slug != "", s.Rally)
	s.ResultsView = DispatchResults(s.Live, sel.StageID, s.Stage, s.RallyResults)
	s.StandingsView = DispatchStandings(s.Standings, s.StandingsFound)
	return s
}

// DerivationCalls reports how often each projection has been computed.
func (c *Controller) DerivationCalls() (results, standings int) {
	return c.deriver.Calls()
}

func (c *Controller) ownsStage(id string) bool {
	_, ok := c.rally.State().Data.Stage(id)
	return ok
}

func (c *Controller) syncStage(ctx context.Context) {
	c.mu.Lock()
	id := c.selection.StageID
	c.mu.Unlock()

	if id == "" {
		c.stage.Reset()
		return
	}
	c.stage.Set(ctx, id)
}
