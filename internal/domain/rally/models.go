package rally

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a rally event.
type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusUnknown    Status = ""
)

// StageStatus is the lifecycle state of a single special stage.
type StageStatus string

const (
	StageUpcoming  StageStatus = "upcoming"
	StageCompleted StageStatus = "completed"
	StageCancelled StageStatus = "cancelled"
	StageUnknown   StageStatus = ""
)

// ParseStatus maps a raw CMS value onto a known rally status.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "upcoming":
		return StatusUpcoming
	case "in-progress", "in progress", "ongoing":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// ParseStageStatus maps a raw CMS value onto a known stage status.
func ParseStageStatus(raw string) StageStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "upcoming":
		return StageUpcoming
	case "completed":
		return StageCompleted
	case "cancelled", "canceled":
		return StageCancelled
	default:
		return StageUnknown
	}
}

// Championship groups rallies into a season.
type Championship struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	SeasonStart time.Time `json:"seasonStart"`
	SeasonEnd   time.Time `json:"seasonEnd"`
	RallyIDs    []string  `json:"rallyIds"`
}

// ImageRef is an opaque reference to an image asset held by the content store.
type ImageRef struct {
	AssetRef string `json:"assetRef,omitempty"`
}

// IsZero reports whether no image is attached.
func (r ImageRef) IsZero() bool {
	return r.AssetRef == ""
}

// Stage is a single timed segment of a rally.
type Stage struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	DistanceKM float64     `json:"distanceKm"`
	StartTime  time.Time   `json:"startTime"`
	Status     StageStatus `json:"status"`
}

// Rally is the root entity of the detail view. Stages keep CMS order.
type Rally struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Image       ImageRef  `json:"image"`
	Status      Status    `json:"status"`
	Stages      []Stage   `json:"specialStages"`
}

// FirstStageID returns the id of the first stage, if any.
func (r Rally) FirstStageID() (string, bool) {
	if len(r.Stages) == 0 {
		return "", false
	}
	return r.Stages[0].ID, true
}

// Stage looks up a stage of this rally by id.
func (r Rally) Stage(id string) (Stage, bool) {
	for _, s := range r.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

// Person is a driver or co-driver reference.
type Person struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// DriverResult is one classified row of a live or stage result.
type DriverResult struct {
	Position  int    `json:"position"`
	CarNumber int    `json:"carNumber"`
	Driver    Person `json:"driver"`
	CoDriver  Person `json:"coDriver"`
	Time      string `json:"time"`
	Gap       string `json:"gap"`
	Status    string `json:"status"`
}

// LiveResult aggregates driver rows published for a rally.
type LiveResult struct {
	ID      string         `json:"id"`
	RallyID string         `json:"rallyId"`
	Results []DriverResult `json:"results"`
}

// StageResult holds the classification of one stage. The zero value means
// the stage has not been processed yet.
type StageResult struct {
	StageID   string         `json:"stageId"`
	StageName string         `json:"stageName"`
	Results   []DriverResult `json:"results"`
}

// HasRows reports whether any driver row has been published.
func (s StageResult) HasRows() bool {
	return len(s.Results) > 0
}

// StandingRow is one line of a rally's overall standings.
type StandingRow struct {
	Position  int    `json:"position"`
	CarNumber int    `json:"carNumber"`
	Driver    string `json:"driver"`
	TotalTime string `json:"totalTime"`
	Gap       string `json:"gap"`
	Points    int    `json:"points"`
}

// StandingsEntry is the standings table of a single rally.
type StandingsEntry struct {
	RallyID   string        `json:"rallyId"`
	Standings []StandingRow `json:"standings"`
}
