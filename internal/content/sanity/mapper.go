package sanity

import (
	"strings"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/timeutil"
)

func mapRally(d rallyDoc) rally.Rally {
	stages := make([]rally.Stage, 0, len(d.SpecialStages))
	for _, s := range d.SpecialStages {
		if s.ID == "" {
			continue
		}
		stages = append(stages, mapStage(s))
	}

	var image rally.ImageRef
	if d.Image != nil && d.Image.Asset != nil {
		image.AssetRef = d.Image.Asset.id()
	}

	return rally.Rally{
		ID:          d.ID,
		Title:       strings.TrimSpace(d.Title),
		Slug:        d.Slug,
		Location:    strings.TrimSpace(d.Location),
		Date:        timeutil.ParseTimestamp(d.Date),
		Description: d.Description,
		Image:       image,
		Status:      rally.ParseStatus(d.Status),
		Stages:      stages,
	}
}

func mapStage(s stageDoc) rally.Stage {
	return rally.Stage{
		ID:         s.ID,
		Name:       strings.TrimSpace(s.Name),
		DistanceKM: s.Distance,
		StartTime:  timeutil.ParseTimestamp(s.StartTime),
		Status:     rally.ParseStageStatus(s.Status),
	}
}

func mapLiveResults(docs []liveResultDoc) []rally.LiveResult {
	out := make([]rally.LiveResult, 0, len(docs))
	for _, d := range docs {
		out = append(out, rally.LiveResult{
			ID:      d.ID,
			RallyID: d.Rally.id(),
			Results: mapDriverRows(d.Results),
		})
	}
	return out
}

func mapStageResult(stageID string, d *stageResultDoc) rally.StageResult {
	if d == nil {
		return rally.StageResult{StageID: stageID, Results: []rally.DriverResult{}}
	}
	res := rally.StageResult{
		StageID: stageID,
		Results: mapDriverRows(d.Results),
	}
	if d.Stage != nil {
		if d.Stage.ID != "" {
			res.StageID = d.Stage.ID
		}
		res.StageName = strings.TrimSpace(d.Stage.Name)
	}
	return res
}

func mapDriverRows(rows []driverRowDoc) []rally.DriverResult {
	out := make([]rally.DriverResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, rally.DriverResult{
			Position:  int(r.Position),
			CarNumber: int(r.CarNumber),
			Driver:    mapPerson(r.Driver),
			CoDriver:  mapPerson(r.CoDriver),
			Time:      strings.TrimSpace(r.Time),
			Gap:       strings.TrimSpace(r.Gap),
			Status:    strings.TrimSpace(r.Status),
		})
	}
	return out
}

func mapPerson(p *personDoc) rally.Person {
	if p == nil {
		return rally.Person{}
	}
	return rally.Person{ID: p.ID, Name: strings.TrimSpace(p.Name)}
}

func mapStandings(docs []standingsDoc) []rally.StandingsEntry {
	out := make([]rally.StandingsEntry, 0, len(docs))
	for _, d := range docs {
		rows := make([]rally.StandingRow, 0, len(d.Standings))
		for _, r := range d.Standings {
			rows = append(rows, rally.StandingRow{
				Position:  int(r.Position),
				CarNumber: int(r.CarNumber),
				Driver:    strings.TrimSpace(r.Driver),
				TotalTime: strings.TrimSpace(r.TotalTime),
				Gap:       strings.TrimSpace(r.Gap),
				Points:    int(r.Points),
			})
		}
		out = append(out, rally.StandingsEntry{RallyID: d.RallyID, Standings: rows})
	}
	return out
}

func mapChampionships(docs []championshipDoc) []rally.Championship {
	out := make([]rally.Championship, 0, len(docs))
	for _, d := range docs {
		ids := make([]string, 0, len(d.RallyIDs))
		for _, id := range d.RallyIDs {
			if id != "" {
				ids = append(ids, id)
			}
		}
		out = append(out, rally.Championship{
			ID:          d.ID,
			Name:        strings.TrimSpace(d.Name),
			Slug:        d.Slug,
			SeasonStart: timeutil.ParseTimestamp(d.SeasonStart),
			SeasonEnd:   timeutil.ParseTimestamp(d.SeasonEnd),
			RallyIDs:    ids,
		})
	}
	return out
}
