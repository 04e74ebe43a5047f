package rallyview

import (
	"sync"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/fetch"
)

// RallyResults keeps the live results that belong to r, in source order.
func RallyResults(r rally.Rally, live []rally.LiveResult) []rally.LiveResult {
	out := make([]rally.LiveResult, 0, len(live))
	for _, lr := range live {
		if lr.RallyID == r.ID {
			out = append(out, lr)
		}
	}
	return out
}

// RallyStandings returns the first standings entry for r.
func RallyStandings(r rally.Rally, entries []rally.StandingsEntry) (rally.StandingsEntry, bool) {
	for _, e := range entries {
		if e.RallyID == r.ID {
			return e, true
		}
	}
	return rally.StandingsEntry{}, false
}

type versionPair struct {
	rally, other uint64
}

// Deriver memoizes the derived projections on the versions of their inputs,
// so unrelated state changes such as a stage pick never recompute them.
type Deriver struct {
	mu sync.Mutex

	resultsKey   versionPair
	resultsReady bool
	results      []rally.LiveResult
	resultsCalls int

	standingsKey   versionPair
	standingsReady bool
	standings      rally.StandingsEntry
	standingsFound bool
	standingsCalls int
}

// Results returns the memoized RallyResults for the given hook states.
func (d *Deriver) Results(r fetch.State[rally.Rally], live fetch.State[[]rally.LiveResult]) []rally.LiveResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := versionPair{r.Version, live.Version}
	if !d.resultsReady || d.resultsKey != key {
		d.results = RallyResults(r.Data, live.Data)
		d.resultsKey, d.resultsReady = key, true
		d.resultsCalls++
	}
	return d.results
}

// Standings returns the memoized RallyStandings for the given hook states.
func (d *Deriver) Standings(r fetch.State[rally.Rally], standings fetch.State[[]rally.StandingsEntry]) (rally.StandingsEntry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := versionPair{r.Version, standings.Version}
	if !d.standingsReady || d.standingsKey != key {
		d.standings, d.standingsFound = RallyStandings(r.Data, standings.Data)
		d.standingsKey, d.standingsReady = key, true
		d.standingsCalls++
	}
	return d.standings, d.standingsFound
}

// Calls reports how many times each projection was computed.
func (d *Deriver) Calls() (results, standings int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resultsCalls, d.standingsCalls
}
