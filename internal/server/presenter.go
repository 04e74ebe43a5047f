package server

import (
	"log/slog"

	"rally-results-service/internal/config"
	"rally-results-service/internal/imageurl"
	"rally-results-service/internal/rallyview"
	"rally-results-service/internal/timeutil"
)

// buildPresenter resolves the display zone, falling back to the default
// zone when DISPLAY_TIMEZONE is not a known location.
func buildPresenter(cfg config.Config, logger *slog.Logger) rallyview.Presenter {
	loc, err := timeutil.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		if logger != nil {
			logger.Warn("invalid display timezone, using default",
				slog.String("timezone", cfg.DisplayTimezone),
				slog.String("default", timeutil.DefaultZone),
			)
		}
		loc, _ = timeutil.LoadLocation(timeutil.DefaultZone)
	}
	cs := cfg.ContentStore
	return rallyview.Presenter{
		Location: loc,
		Images:   imageurl.New(cs.ImageCDN, cs.ProjectID, cs.Dataset),
	}
}
