package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"rally-results-service/internal/http/handlers"
	"rally-results-service/internal/http/middleware"
	"rally-results-service/internal/metrics"
)

// NewRouter registers HTTP routes on a chi router. The admin routes are
// mounted only when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/placeholder.svg", handler.Placeholder)

	r.Route("/rallies", func(r chi.Router) {
		r.Get("/", handler.RallyPage)
		r.Get("/{slug}", handler.RallyPage)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/rallies/", handler.RallyAPI)
		r.Get("/rallies/{slug}", handler.RallyAPI)
		r.Get("/championships", handler.Championships)
		r.Get("/championships/{slug}", handler.ChampionshipBySlug)
	})

	if admin != nil {
		r.Post("/admin/championships/refresh", admin.RefreshChampionships)
	}
	return r
}
