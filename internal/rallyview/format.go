package rallyview

import (
	"strconv"
	"strings"

	"rally-results-service/internal/domain/rally"
)

// Display copy shared by the HTML and JSON renderings.
const (
	MsgLoadingRally     = "Loading rally information..."
	MsgLoadingResults   = "Loading results..."
	MsgLoadingStage     = "Loading stage results..."
	MsgLoadingStandings = "Loading standings..."
	MsgResultsError     = "Error loading results!"
	MsgStandingsError   = "Error loading standings!"
	MsgStageEmpty       = "No results available for this stage yet."
	MsgNoResults        = "No results available yet. Please select a stage or wait for results to be published."
	MsgStandingsEmpty   = "No standings available yet."
	MsgNoStages         = "No special stages defined for this rally yet."

	HeadingRallyResults = "Overall Rally Results"
	HeadingStandings    = "Rally Standings"
	HeadingAbout        = "About the Rally"
)

const (
	unknownDriver = "Unknown Driver"
	emptyCell     = "-"
	unknownStatus = "UNKNOWN"
	finished      = "finished"
)

// RallyBadge is the header badge for a rally status; unknown has none.
func RallyBadge(s rally.Status) string {
	switch s {
	case rally.StatusUpcoming:
		return "Upcoming"
	case rally.StatusInProgress:
		return "Ongoing"
	case rally.StatusCompleted:
		return "Completed"
	default:
		return ""
	}
}

// StageBadge is the stage table badge for a stage status.
func StageBadge(s rally.StageStatus) string {
	switch s {
	case rally.StageCompleted:
		return "Completed"
	case rally.StageUpcoming:
		return "Upcoming"
	case rally.StageCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// StageHeading titles a stage results table.
func StageHeading(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		name = "Stage"
	}
	return name + " Results"
}

func formatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return emptyCell
	}
	return v
}

func toDriverRow(d rally.DriverResult) DriverRow {
	row := DriverRow{
		Position:  d.Position,
		CarNumber: d.CarNumber,
		Driver:    d.Driver.Name,
		CoDriver:  d.CoDriver.Name,
		Time:      orDash(d.Time),
		Gap:       orDash(d.Gap),
		Status:    strings.ToUpper(strings.TrimSpace(d.Status)),
		Finished:  strings.EqualFold(strings.TrimSpace(d.Status), finished),
	}
	if row.Driver == "" {
		row.Driver = unknownDriver
	}
	if row.Status == "" {
		row.Status = unknownStatus
	}
	return row
}

func toDriverRows(in []rally.DriverResult) []DriverRow {
	out := make([]DriverRow, 0, len(in))
	for _, d := range in {
		out = append(out, toDriverRow(d))
	}
	return out
}

func toStandingRows(in []rally.StandingRow) []StandingRow {
	out := make([]StandingRow, 0, len(in))
	for _, r := range in {
		out = append(out, StandingRow{
			Position:  r.Position,
			CarNumber: r.CarNumber,
			Driver:    r.Driver,
			TotalTime: orDash(r.TotalTime),
			Gap:       orDash(r.Gap),
			Points:    r.Points,
		})
	}
	return out
}
