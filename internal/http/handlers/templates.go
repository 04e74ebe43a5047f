package handlers

import (
	"embed"
	"html/template"
	"net/url"

	"rally-results-service/internal/rallyview"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/placeholder.svg
var placeholderSVG []byte

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	templateRally    = "rally"
	templateNotFound = "not_found"
)

// tabLink is one entry of the tab bar.
type tabLink struct {
	Label  string
	Href   string
	Active bool
}

// rallyPageData is what the rally template renders.
type rallyPageData struct {
	rallyview.Page
	AboutHeading string
	Tabs         []tabLink
}

var tabLabels = []struct {
	tab   rallyview.Tab
	label string
}{
	{rallyview.TabStages, "Special Stages"},
	{rallyview.TabResults, "Results"},
	{rallyview.TabStandings, "Standings"},
}

func newRallyPageData(page rallyview.Page) rallyPageData {
	data := rallyPageData{Page: page, AboutHeading: rallyview.HeadingAbout}
	for _, t := range tabLabels {
		data.Tabs = append(data.Tabs, tabLink{
			Label:  t.label,
			Href:   tabHref(t.tab, page.SelectedStageID),
			Active: t.tab == page.ActiveTab,
		})
	}
	return data
}

// tabHref keeps the current stage when switching tabs.
func tabHref(tab rallyview.Tab, stageID string) string {
	q := url.Values{}
	q.Set("tab", string(tab))
	if stageID != "" {
		q.Set("stage", stageID)
	}
	return "?" + q.Encode()
}
