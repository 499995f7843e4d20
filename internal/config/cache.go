package config

// CacheConfig controls the optional short-lived league data cache.
// Caching is a performance optimization only; correctness never depends
// on it.
type CacheConfig struct {
	Enabled bool
	TTL     Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Enabled: boolEnvOrDefault(envCacheEnabled, defaultCacheEnabled),
		TTL:     durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}
