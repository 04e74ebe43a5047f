package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/http/requestutil"
	"rally-results-service/internal/logging"
)

// Refresher runs one championships probe cycle on demand.
type Refresher interface {
	Refresh(ctx context.Context) ([]rally.Championship, error)
}

// AdminHandler exposes admin-only endpoints (e.g., championships refresh).
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshChampionships fetches championships now instead of waiting for the
// next probe tick. Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshChampionships(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(r.Context(), logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresher not configured", logger)
		return
	}

	champs, err := h.refresher.Refresh(r.Context())
	if err != nil {
		logging.Error(r.Context(), logger, "admin championships refresh failed", err)
		writeError(w, r, http.StatusBadGateway, "failed to refresh championships", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"championships": len(champs),
		"status":        "ok",
	}, logger)
	logging.Info(r.Context(), logger, "admin championships refreshed", slog.Int(logging.FieldCount, len(champs)))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
