package sanity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type queryResponse[T any] struct {
	Result T `json:"result"`
}

type refDoc struct {
	ID  string `json:"_id"`
	Ref string `json:"_ref"`
}

func (r *refDoc) id() string {
	if r == nil {
		return ""
	}
	if r.ID != "" {
		return r.ID
	}
	return r.Ref
}

type imageDoc struct {
	Asset *refDoc `json:"asset"`
}

type stageDoc struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Distance  float64 `json:"distance"`
	StartTime string  `json:"startTime"`
	Status    string  `json:"status"`
}

type rallyDoc struct {
	ID            string     `json:"_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Location      string     `json:"location"`
	Date          string     `json:"date"`
	Description   string     `json:"description"`
	Image         *imageDoc  `json:"image"`
	Status        string     `json:"status"`
	SpecialStages []stageDoc `json:"specialStages"`
}

type personDoc struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type driverRowDoc struct {
	Position  flexInt    `json:"position"`
	CarNumber flexInt    `json:"carNumber"`
	Driver    *personDoc `json:"driver"`
	CoDriver  *personDoc `json:"coDriver"`
	Time      string     `json:"time"`
	Gap       string     `json:"gap"`
	Status    string     `json:"status"`
}

type liveResultDoc struct {
	ID      string         `json:"_id"`
	Rally   *refDoc        `json:"rally"`
	Results []driverRowDoc `json:"results"`
}

type stageResultDoc struct {
	Stage   *personDoc     `json:"stage"`
	Results []driverRowDoc `json:"results"`
}

type standingRowDoc struct {
	Position  flexInt `json:"position"`
	CarNumber flexInt `json:"carNumber"`
	Driver    string  `json:"driver"`
	TotalTime string  `json:"totalTime"`
	Gap       string  `json:"gap"`
	Points    flexInt `json:"points"`
}

type standingsDoc struct {
	RallyID   string           `json:"rallyId"`
	Standings []standingRowDoc `json:"standings"`
}

type championshipDoc struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	SeasonStart string   `json:"seasonStart"`
	SeasonEnd   string   `json:"seasonEnd"`
	RallyIDs    []string `json:"rallyIds"`
}

// flexInt accepts numbers, numeric strings and null; anything else decodes as 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexInt(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}
