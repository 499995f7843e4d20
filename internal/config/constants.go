package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envRequestTimeout = "REQUEST_TIMEOUT"
	envCacheEnabled   = "CACHE_ENABLED"
	envCacheTTL       = "CACHE_TTL"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "8000"
	defaultProvider = "fpl"
	// Whole-pipeline budget per request: standings pages plus one history
	// call per entry, so large leagues need headroom.
	defaultRequestTimeout = 60 * Duration(time.Second)
	defaultCacheEnabled   = false
	defaultCacheTTL       = 5 * Duration(time.Minute)
	defaultMetricsPort    = "9090"
)
