package server

import (
	"context"
	"log/slog"
	"net/http"

	"rally-results-service/internal/app/championships"
	"rally-results-service/internal/config"
	"rally-results-service/internal/content"
	httpserver "rally-results-service/internal/http"
	"rally-results-service/internal/http/handlers"
	"rally-results-service/internal/logging"
	"rally-results-service/internal/metrics"
	"rally-results-service/internal/poller"
	"rally-results-service/internal/rallyview"
	"rally-results-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	content       content.Store
	champsStore   *store.MemoryStore
	champsService *championships.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured content store and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithStore(cfg config.Config, logger *slog.Logger, cs content.Store) *Server {
	return newServerWithMetrics(cfg, logger, cs, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, cs content.Store, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if cs == nil {
		cs = newStoreFactory(logger, recorder).build(cfg)
	} else {
		cs = content.NewInstrumentedStore(cs, normalizeStoreName(cfg.ContentProvider, cs), logger, recorder)
	}
	memoryStore, champSvc := buildServices()
	plr := poller.New(cs, champSvc, logger, recorder, cfg.ProbeInterval)
	presenter := buildPresenter(cfg, logger)
	httpSrv := buildHTTPServer(cfg, cs, presenter, champSvc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		content:       cs,
		champsStore:   memoryStore,
		champsService: champSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, champSvc *championships.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		champsService: champSvc,
		httpServer:    httpSrv,
		poller:        plr,
	}
}

func buildServices() (*store.MemoryStore, *championships.Service) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, championships.NewService(memoryStore)
}

func buildHTTPServer(
	cfg config.Config,
	cs content.Store,
	presenter rallyview.Presenter,
	champSvc *championships.Service,
	logger *slog.Logger,
	recorder *metrics.Recorder,
	plr Poller,
) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(cs, presenter, champSvc, logger, recorder, statusFn)
	// Admin refresh is mounted only when a token is configured and the poller can refresh on demand.
	var admin *handlers.AdminHandler
	if refresher, ok := plr.(handlers.Refresher); ok && cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(refresher, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin, logger, recorder)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeoutFor(cfg.ContentStore.Timeout),
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
