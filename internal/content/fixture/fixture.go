package fixture

import (
	"context"
	"fmt"
	"time"

	"rally-results-service/internal/content"
	"rally-results-service/internal/domain/rally"
)

// Store serves a static Acropolis rally, useful for local runs and tests.
type Store struct {
	now func() time.Time
}

var _ content.Store = (*Store)(nil)

const (
	AcropolisSlug = "rally-acropolis-2024"
	AcropolisID   = "rally-acropolis"
	CyprusID      = "rally-cyprus"
)

// New creates a fixture store with a time source.
func New() *Store {
	return &Store{now: time.Now}
}

// FetchRallyBySlug returns the fixture rally; any other slug is not found.
func (s *Store) FetchRallyBySlug(ctx context.Context, slug string) (rally.Rally, error) {
	_ = ctx
	if slug != AcropolisSlug {
		return rally.Rally{}, fmt.Errorf("rally %q: %w", slug, content.ErrNotFound)
	}

	start := s.start()
	return rally.Rally{
		ID:          AcropolisID,
		Title:       "Acropolis Rally Greece",
		Slug:        AcropolisSlug,
		Location:    "Lamia, Greece",
		Date:        start,
		Description: "The Rally of Gods on the rough mountain roads of central Greece.",
		Image:       rally.ImageRef{AssetRef: "image-acropolis2024-1600x900-jpg"},
		Status:      rally.StatusInProgress,
		Stages: []rally.Stage{
			{ID: "ss1", Name: "Loutraki", DistanceKM: 12.5, StartTime: start.Add(time.Hour), Status: rally.StageCompleted},
			{ID: "ss2", Name: "Pissia", DistanceKM: 22.1, StartTime: start.Add(3 * time.Hour), Status: rally.StageUpcoming},
			{ID: "ss3", Name: "Elikonas", DistanceKM: 18.4, StartTime: start.Add(27 * time.Hour), Status: rally.StageUpcoming},
		},
	}, nil
}

// FetchLiveResults returns live results for every fixture rally; callers filter by rally.
func (s *Store) FetchLiveResults(ctx context.Context, rallyID string) ([]rally.LiveResult, error) {
	_ = ctx
	if rallyID != AcropolisID {
		return []rally.LiveResult{}, nil
	}
	return []rally.LiveResult{
		{
			ID:      "live-acropolis-day1",
			RallyID: AcropolisID,
			Results: []rally.DriverResult{
				driverRow(1, 17, "Sebastien Ogier", "Vincent Landais", "10:02.3", "", "finished"),
				driverRow(2, 8, "Ott Tanak", "Martin Jarveoja", "10:05.9", "+3.6", "finished"),
				driverRow(3, 1, "Thierry Neuville", "Martijn Wydaeghe", "10:09.4", "+7.1", "finished"),
			},
		},
	}, nil
}

// FetchStandings returns standings for the fixture rally and one other rally.
func (s *Store) FetchStandings(ctx context.Context) ([]rally.StandingsEntry, error) {
	_ = ctx
	return []rally.StandingsEntry{
		{
			RallyID: CyprusID,
			Standings: []rally.StandingRow{
				{Position: 1, CarNumber: 4, Driver: "Kalle Rovanpera", TotalTime: "2:58:11.0", Points: 25},
			},
		},
		{
			RallyID: AcropolisID,
			Standings: []rally.StandingRow{
				{Position: 1, CarNumber: 17, Driver: "Sebastien Ogier", TotalTime: "3:01:00.0", Points: 25},
				{Position: 2, CarNumber: 8, Driver: "Ott Tanak", TotalTime: "3:01:12.5", Gap: "+12.5", Points: 18},
			},
		},
	}, nil
}

// FetchStageResult returns a classification for the first stage only.
func (s *Store) FetchStageResult(ctx context.Context, stageID string) (rally.StageResult, error) {
	_ = ctx
	if stageID != "ss1" {
		return rally.StageResult{StageID: stageID, Results: []rally.DriverResult{}}, nil
	}
	return rally.StageResult{
		StageID:   "ss1",
		StageName: "Loutraki",
		Results: []rally.DriverResult{
			driverRow(1, 8, "Ott Tanak", "Martin Jarveoja", "6:41.2", "", "finished"),
			driverRow(2, 17, "Sebastien Ogier", "Vincent Landais", "6:42.0", "+0.8", "finished"),
		},
	}, nil
}

// FetchChampionships returns a single championship for the current season.
func (s *Store) FetchChampionships(ctx context.Context) ([]rally.Championship, error) {
	_ = ctx
	year := s.now().UTC().Year()
	return []rally.Championship{
		{
			ID:          "wrc",
			Name:        fmt.Sprintf("World Rally Championship %d", year),
			Slug:        fmt.Sprintf("wrc-%d", year),
			SeasonStart: time.Date(year, time.January, 20, 0, 0, 0, 0, time.UTC),
			SeasonEnd:   time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC),
			RallyIDs:    []string{CyprusID, AcropolisID},
		},
	}, nil
}

// start is the rally start, pinned to 08:00 UTC of the current day.
func (s *Store) start() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, time.UTC)
}

func driverRow(pos, car int, driver, coDriver, elapsed, gap, status string) rally.DriverResult {
	return rally.DriverResult{
		Position:  pos,
		CarNumber: car,
		Driver:    rally.Person{Name: driver},
		CoDriver:  rally.Person{Name: coDriver},
		Time:      elapsed,
		Gap:       gap,
		Status:    status,
	}
}
