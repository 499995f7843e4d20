package config

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	Provider       string
	RequestTimeout Duration
	FPL            FPLConfig
	Cache          CacheConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		Provider:       envOrDefault(envProvider, defaultProvider),
		RequestTimeout: durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		FPL:            loadFPL(),
		Cache:          loadCache(),
		Metrics:        loadMetrics(),
	}
}
