package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	ContentProvider string
	ProbeInterval   Duration
	DisplayTimezone string
	ContentStore    ContentStoreConfig
	Metrics         MetricsConfig
	Log             LogConfig

	// AdminToken guards the admin endpoints; empty disables them.
	AdminToken string
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		ContentProvider: envOrDefault(envContentProvider, defaultContentProvider),
		ProbeInterval:   durationEnvOrDefault(envProbeInterval, defaultProbeInterval),
		DisplayTimezone: envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
		ContentStore:    loadContentStore(),
		Metrics:         loadMetrics(),
		Log:             loadLog(),
		AdminToken:      envOrDefault(envAdminToken, ""),
	}
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
