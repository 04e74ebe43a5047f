package rallyview

import (
	"strings"

	"rally-results-service/internal/domain/rally"
)

// Tab identifies a section of the rally page.
type Tab string

const (
	TabStages    Tab = "stages"
	TabResults   Tab = "results"
	TabStandings Tab = "standings"
)

// ParseTab maps a query value onto a tab.
func ParseTab(raw string) (Tab, bool) {
	switch Tab(strings.ToLower(strings.TrimSpace(raw))) {
	case TabStages:
		return TabStages, true
	case TabResults:
		return TabResults, true
	case TabStandings:
		return TabStandings, true
	default:
		return "", false
	}
}

// Selection is the per-mount view state: the selected stage and active tab.
// An empty StageID means no stage has been selected yet.
type Selection struct {
	StageID   string
	ActiveTab Tab
}

// NewSelection returns the initial state: no stage, stages tab.
func NewSelection() Selection {
	return Selection{ActiveTab: TabStages}
}

// ApplyDefault selects the rally's first stage if nothing is selected yet.
// It reports whether the selection changed.
func (s *Selection) ApplyDefault(r rally.Rally) bool {
	if s.StageID != "" {
		return false
	}
	id, ok := r.FirstStageID()
	if !ok {
		return false
	}
	s.StageID = id
	return true
}

// SelectStage is a pick from the results tab stage picker.
func (s *Selection) SelectStage(id string) {
	s.StageID = id
}

// ClickStage is a pick from the stage table; it also opens the results tab.
func (s *Selection) ClickStage(id string) {
	s.StageID = id
	s.ActiveTab = TabResults
}

// SetTab switches the active tab.
func (s *Selection) SetTab(t Tab) {
	s.ActiveTab = t
}
