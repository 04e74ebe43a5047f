package rallyview

import (
	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/fetch"
)

// PageView is the top-level rendering branch.
type PageView int

const (
	PageLoading PageView = iota
	PageNotFound
	PageDetail
)

var pageViewNames = [...]string{"loading", "not_found", "detail"}

func (v PageView) String() string { return enumName(pageViewNames[:], int(v)) }

// MarshalText renders the view as its name.
func (v PageView) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ResultsView is the rendering branch of the results tab.
type ResultsView int

const (
	ResultsLoading ResultsView = iota
	ResultsError
	StageLoading
	StageTable
	StageEmpty
	RallyTables
	NoResults
)

var resultsViewNames = [...]string{
	"results_loading", "results_error", "stage_loading", "stage_table",
	"stage_empty", "rally_tables", "no_results",
}

func (v ResultsView) String() string { return enumName(resultsViewNames[:], int(v)) }

// MarshalText renders the view as its name.
func (v ResultsView) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// StandingsView is the rendering branch of the standings tab.
type StandingsView int

const (
	StandingsLoading StandingsView = iota
	StandingsError
	StandingsTable
	StandingsEmpty
)

var standingsViewNames = [...]string{"standings_loading", "standings_error", "standings_table", "standings_empty"}

func (v StandingsView) String() string { return enumName(standingsViewNames[:], int(v)) }

// MarshalText renders the view as its name.
func (v StandingsView) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// DispatchPage picks the page branch. An absent slug, a failed fetch and a
// missing rally all render as not found.
func DispatchPage(slugPresent bool, r fetch.State[rally.Rally]) PageView {
	switch {
	case !slugPresent:
		return PageNotFound
	case r.Loading:
		return PageLoading
	case r.Err != nil || r.Data.ID == "":
		return PageNotFound
	default:
		return PageDetail
	}
}

// DispatchResults picks the results tab branch. Order matters: a selected
// stage always wins over the aggregate rally results.
func DispatchResults(live fetch.State[[]rally.LiveResult], stageID string, stage fetch.State[rally.StageResult], rallyResults []rally.LiveResult) ResultsView {
	switch {
	case live.Loading:
		return ResultsLoading
	case live.Err != nil:
		return ResultsError
	case stageID != "":
		switch {
		case stage.Loading:
			return StageLoading
		case stage.Data.HasRows():
			return StageTable
		default:
			return StageEmpty
		}
	case len(rallyResults) > 0:
		return RallyTables
	default:
		return NoResults
	}
}

// DispatchStandings picks the standings tab branch.
func DispatchStandings(st fetch.State[[]rally.StandingsEntry], found bool) StandingsView {
	switch {
	case st.Loading:
		return StandingsLoading
	case st.Err != nil:
		return StandingsError
	case found:
		return StandingsTable
	default:
		return StandingsEmpty
	}
}
