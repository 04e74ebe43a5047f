package config

import "time"

const (
	envPort            = "PORT"
	envContentProvider = "CONTENT_PROVIDER"
	envProbeInterval   = "PROBE_INTERVAL"
	envDisplayTimezone = "DISPLAY_TIMEZONE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envAdminToken      = "ADMIN_TOKEN"

	envSanityProjectID  = "SANITY_PROJECT_ID"
	envSanityDataset    = "SANITY_DATASET"
	envSanityAPIVersion = "SANITY_API_VERSION"
	envSanityUseCDN     = "SANITY_USE_CDN"
	envSanityToken      = "SANITY_TOKEN"
	envSanityBaseURL    = "SANITY_BASE_URL"
	envSanityTimeout    = "SANITY_TIMEOUT"
	envImageCDNURL      = "IMAGE_CDN_URL"

	defaultPort            = "4000"
	defaultContentProvider = "fixture"
	// Championship listings change rarely; one probe a minute is plenty.
	defaultProbeInterval   = Duration(time.Minute)
	defaultDisplayTimezone = "Europe/Athens"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "rally-results-service"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"

	defaultSanityDataset    = "production"
	defaultSanityAPIVersion = "2025-05-04"
	defaultSanityTimeout    = 10 * Duration(time.Second)
	defaultImageCDNURL      = "https://cdn.sanity.io"
)
