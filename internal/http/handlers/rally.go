package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"rally-results-service/internal/logging"
	"rally-results-service/internal/rallyview"
)

const (
	queryStage = "stage"
	queryTab   = "tab"
	queryFrom  = "from"
	fromStages = "stages"
)

// RallyPage renders the rally detail page as HTML. An absent or unknown
// slug renders the not-found page with a 404.
func (h *Handler) RallyPage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}
	h.recorder.RecordPageView(page.View.String())

	if page.View == rallyview.PageNotFound {
		writeHTML(w, r, http.StatusNotFound, templateNotFound, page, h.logger)
		return
	}
	writeHTML(w, r, http.StatusOK, templateRally, newRallyPageData(page), h.logger)
}

// RallyAPI returns the rally page view model as JSON.
func (h *Handler) RallyAPI(w http.ResponseWriter, r *http.Request) {
	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}
	h.recorder.RecordPageView(page.View.String())

	if page.View == rallyview.PageNotFound {
		writeError(w, r, http.StatusNotFound, "rally not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, page, h.logger)
}

// loadPage mounts a fresh controller for the request and builds the page.
// It writes a 503 and returns false when the request ends before the
// content store settles.
func (h *Handler) loadPage(w http.ResponseWriter, r *http.Request) (rallyview.Page, bool) {
	slug := chi.URLParam(r, "slug")
	in := selectionFromQuery(r.URL.Query())
	logger := loggerFromContext(r, h.logger)

	ctrl := rallyview.NewController(h.store, h.recorder)
	if err := ctrl.Mount(r.Context(), slug, in); err != nil {
		logging.Warn(r.Context(), logger, "rally page abandoned",
			slog.String(logging.FieldSlug, slug),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusServiceUnavailable, "content store unavailable", h.logger)
		return rallyview.Page{}, false
	}

	page := h.presenter.Build(ctrl.Snapshot())
	logging.Debug(r.Context(), logger, "rally page built",
		slog.String(logging.FieldSlug, slug),
		slog.String("view", page.View.String()),
		slog.String("results_view", page.Results.View.String()),
		slog.String("standings_view", page.Standings.View.String()),
	)
	return page, true
}

// selectionFromQuery reads ?stage=, ?tab= and ?from=stages. Unknown tabs
// are ignored.
func selectionFromQuery(q url.Values) rallyview.Input {
	in := rallyview.Input{
		StageID:    strings.TrimSpace(q.Get(queryStage)),
		FromStages: q.Get(queryFrom) == fromStages,
	}
	if tab, ok := rallyview.ParseTab(q.Get(queryTab)); ok {
		in.Tab = tab
	}
	return in
}
