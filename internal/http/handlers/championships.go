package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/logging"
)

type championshipsResponse struct {
	Count         int                  `json:"count"`
	Championships []rally.Championship `json:"championships"`
}

// Championships returns the championships held by the background probe.
func (h *Handler) Championships(w http.ResponseWriter, r *http.Request) {
	var champs []rally.Championship
	if h.champs != nil {
		champs = h.champs.Championships()
	}
	if champs == nil {
		champs = []rally.Championship{}
	}
	logging.Info(r.Context(), h.logger, "served championships", slog.Int(logging.FieldCount, len(champs)))
	writeJSON(w, http.StatusOK, championshipsResponse{Count: len(champs), Championships: champs}, h.logger)
}

// ChampionshipBySlug returns a single championship if present.
func (h *Handler) ChampionshipBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" || strings.ContainsAny(slug, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid championship slug", h.logger)
		return
	}
	if h.champs == nil {
		writeError(w, r, http.StatusNotFound, "championship not found", h.logger)
		return
	}
	champ, ok := h.champs.ChampionshipBySlug(slug)
	if !ok {
		writeError(w, r, http.StatusNotFound, "championship not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, champ, h.logger)
}
