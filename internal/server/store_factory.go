package server

import (
	"fmt"
	"log/slog"
	"strings"

	"rally-results-service/internal/config"
	"rally-results-service/internal/content"
	"rally-results-service/internal/content/fixture"
	"rally-results-service/internal/content/sanity"
	"rally-results-service/internal/metrics"
)

const (
	storeFixture = "fixture"
	storeSanity  = "sanity"
)

// storeFactory assembles the content store with the shared instrumentation wrapper.
type storeFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newStoreFactory(logger *slog.Logger, metrics *metrics.Recorder) storeFactory {
	return storeFactory{logger: logger, metrics: metrics}
}

func (f storeFactory) build(cfg config.Config) content.Store {
	base := selectStore(cfg, f.logger)
	return content.NewInstrumentedStore(base, normalizeStoreName(cfg.ContentProvider, base), f.logger, f.metrics)
}

func selectStore(cfg config.Config, logger *slog.Logger) content.Store {
	switch strings.ToLower(strings.TrimSpace(cfg.ContentProvider)) {
	case storeFixture, "":
		return fixture.New()
	case storeSanity:
		cs := cfg.ContentStore
		if cs.ProjectID == "" && cs.BaseURL == "" {
			if logger != nil {
				logger.Warn("sanity store needs SANITY_PROJECT_ID, falling back to fixture")
			}
			return fixture.New()
		}
		return sanity.NewClient(sanity.Config{
			ProjectID:  cs.ProjectID,
			Dataset:    cs.Dataset,
			APIVersion: cs.APIVersion,
			UseCDN:     cs.UseCDN,
			Token:      cs.Token,
			BaseURL:    cs.BaseURL,
			Timeout:    cs.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown content provider, falling back to fixture", slog.String("provider", cfg.ContentProvider))
		}
		return fixture.New()
	}
}

// normalizeStoreName returns a lower-cased store name, deriving from the
// instance when not explicitly configured. Used as the metrics label.
func normalizeStoreName(raw string, store content.Store) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if store != nil {
		return strings.ToLower(fmt.Sprintf("%T", store))
	}
	return "store"
}
