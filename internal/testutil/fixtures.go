package testutil

import (
	"time"

	"rally-results-service/internal/domain/rally"
)

// SampleRally returns a rally with one upcoming stage per stage id, in order.
func SampleRally(id, slug string, stageIDs ...string) rally.Rally {
	start := time.Date(2024, 9, 5, 8, 0, 0, 0, time.UTC)
	stages := make([]rally.Stage, 0, len(stageIDs))
	for i, sid := range stageIDs {
		stages = append(stages, rally.Stage{
			ID:         sid,
			Name:       "Stage " + sid,
			DistanceKM: 10 + float64(i),
			StartTime:  start.Add(time.Duration(i) * time.Hour),
			Status:     rally.StageUpcoming,
		})
	}
	return rally.Rally{
		ID:       id,
		Title:    "Rally " + id,
		Slug:     slug,
		Location: "Somewhere",
		Date:     start,
		Status:   rally.StatusUpcoming,
		Stages:   stages,
	}
}

// SampleDriverRow returns a finished driver row.
func SampleDriverRow(pos int, driver string) rally.DriverResult {
	return rally.DriverResult{
		Position:  pos,
		CarNumber: pos * 10,
		Driver:    rally.Person{ID: driver, Name: driver},
		Time:      "10:00.0",
		Status:    "finished",
	}
}

// SampleStageResult returns a stage result with one row per driver.
func SampleStageResult(stageID string, drivers ...string) rally.StageResult {
	rows := make([]rally.DriverResult, 0, len(drivers))
	for i, d := range drivers {
		rows = append(rows, SampleDriverRow(i+1, d))
	}
	return rally.StageResult{StageID: stageID, StageName: "Stage " + stageID, Results: rows}
}

// SampleStandings returns a standings entry with a single leader.
func SampleStandings(rallyID, leader string) rally.StandingsEntry {
	return rally.StandingsEntry{
		RallyID:   rallyID,
		Standings: []rally.StandingRow{{Position: 1, CarNumber: 1, Driver: leader, TotalTime: "1:00:00.0", Points: 25}},
	}
}
