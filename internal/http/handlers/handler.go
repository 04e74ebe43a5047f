package handlers

import (
	"log/slog"
	"net/http"

	"rally-results-service/internal/app/championships"
	"rally-results-service/internal/content"
	"rally-results-service/internal/metrics"
	"rally-results-service/internal/poller"
	"rally-results-service/internal/rallyview"
)

// Handler wires HTTP routes to the rally page controller and the
// championships service.
type Handler struct {
	store     content.Store
	presenter rallyview.Presenter
	champs    *championships.Service
	logger    *slog.Logger
	recorder  *metrics.Recorder
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the
// service always reports ready.
func NewHandler(
	store content.Store,
	presenter rallyview.Presenter,
	champs *championships.Service,
	logger *slog.Logger,
	recorder *metrics.Recorder,
	statusFn func() poller.Status,
) *Handler {
	return &Handler{
		store:     store,
		presenter: presenter,
		champs:    champs,
		logger:    logger,
		recorder:  recorder,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
