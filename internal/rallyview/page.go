package rallyview

import (
	"time"

	"rally-results-service/internal/imageurl"
	"rally-results-service/internal/timeutil"
)

const headerImageWidth = 1600

// Page is the render-ready view model of the rally page.
type Page struct {
	View            PageView         `json:"view"`
	Slug            string           `json:"slug"`
	Message         string           `json:"message,omitempty"`
	ActiveTab       Tab              `json:"activeTab,omitempty"`
	SelectedStageID string           `json:"selectedStageId,omitempty"`
	Header          Header           `json:"header"`
	Stages          []StageRow       `json:"stages"`
	StagesMessage   string           `json:"stagesMessage,omitempty"`
	Results         ResultsSection   `json:"results"`
	Standings       StandingsSection `json:"standings"`
}

// Header is the rally banner.
type Header struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Badge       string `json:"badge,omitempty"`
}

// StageRow is one line of the stage table and one button of the stage picker.
type StageRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Badge    string `json:"badge"`
	Selected bool   `json:"selected"`
}

// DriverRow is one classified driver.
type DriverRow struct {
	Position  int    `json:"position"`
	CarNumber int    `json:"carNumber"`
	Driver    string `json:"driver"`
	CoDriver  string `json:"coDriver,omitempty"`
	Time      string `json:"time"`
	Gap       string `json:"gap"`
	Status    string `json:"status"`
	Finished  bool   `json:"finished"`
}

// ResultsTable is one overall-results document.
type ResultsTable struct {
	ID   string      `json:"id"`
	Rows []DriverRow `json:"rows"`
}

// ResultsSection is the results tab.
type ResultsSection struct {
	View      ResultsView    `json:"view"`
	Message   string         `json:"message,omitempty"`
	Heading   string         `json:"heading,omitempty"`
	StageRows []DriverRow    `json:"stageRows,omitempty"`
	Tables    []ResultsTable `json:"tables,omitempty"`
}

// StandingRow is one line of the standings table.
type StandingRow struct {
	Position  int    `json:"position"`
	CarNumber int    `json:"carNumber"`
	Driver    string `json:"driver"`
	TotalTime string `json:"totalTime"`
	Gap       string `json:"gap"`
	Points    int    `json:"points"`
}

// StandingsSection is the standings tab.
type StandingsSection struct {
	View    StandingsView `json:"view"`
	Message string        `json:"message,omitempty"`
	Heading string        `json:"heading,omitempty"`
	Rows    []StandingRow `json:"rows,omitempty"`
}

// Presenter turns snapshots into pages for one display zone and image CDN.
type Presenter struct {
	Location *time.Location
	Images   *imageurl.Builder
}

// Build renders s. Only a detail page carries sections.
func (p Presenter) Build(s Snapshot) Page {
	page := Page{View: s.Page, Slug: s.Slug}
	switch s.Page {
	case PageLoading:
		page.Message = MsgLoadingRally
		return page
	case PageNotFound:
		return page
	}

	r := s.Rally.Data
	page.ActiveTab = s.Selection.ActiveTab
	page.SelectedStageID = s.Selection.StageID
	page.Header = Header{
		Title:       r.Title,
		Location:    r.Location,
		Date:        timeutil.FormatDate(r.Date, p.Location),
		Description: r.Description,
		ImageURL:    p.Images.URL(r.Image, headerImageWidth),
		Badge:       RallyBadge(r.Status),
	}

	page.Stages = make([]StageRow, 0, len(r.Stages))
	for _, st := range r.Stages {
		page.Stages = append(page.Stages, StageRow{
			ID:       st.ID,
			Name:     st.Name,
			Distance: formatDistance(st.DistanceKM),
			Date:     timeutil.FormatDate(st.StartTime, p.Location),
			Time:     timeutil.FormatTime(st.StartTime, p.Location),
			Badge:    StageBadge(st.Status),
			Selected: st.ID == s.Selection.StageID,
		})
	}
	if len(page.Stages) == 0 {
		page.StagesMessage = MsgNoStages
	}

	page.Results = buildResults(s)
	page.Standings = buildStandings(s)
	return page
}

func buildResults(s Snapshot) ResultsSection {
	sec := ResultsSection{View: s.ResultsView}
	switch s.ResultsView {
	case ResultsLoading:
		sec.Message = MsgLoadingResults
	case ResultsError:
		sec.Message = MsgResultsError
	case StageLoading:
		sec.Message = MsgLoadingStage
	case StageTable:
		sec.Heading = StageHeading(s.Stage.Data.StageName)
		sec.StageRows = toDriverRows(s.Stage.Data.Results)
	case StageEmpty:
		sec.Message = MsgStageEmpty
	case RallyTables:
		sec.Heading = HeadingRallyResults
		for _, lr := range s.RallyResults {
			sec.Tables = append(sec.Tables, ResultsTable{ID: lr.ID, Rows: toDriverRows(lr.Results)})
		}
	default:
		sec.Message = MsgNoResults
	}
	return sec
}

func buildStandings(s Snapshot) StandingsSection {
	sec := StandingsSection{View: s.StandingsView}
	switch s.StandingsView {
	case StandingsLoading:
		sec.Message = MsgLoadingStandings
	case StandingsError:
		sec.Message = MsgStandingsError
	case StandingsTable:
		sec.Heading = HeadingStandings
		sec.Rows = toStandingRows(s.RallyStandings.Standings)
	default:
		sec.Message = MsgStandingsEmpty
	}
	return sec
}
