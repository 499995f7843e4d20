package server

import (
	"log/slog"
	"net/http"

	"github.com/eidsvold/fpl-motw/internal/config"
	"github.com/eidsvold/fpl-motw/internal/metrics"
	"github.com/eidsvold/fpl-motw/internal/providers"
	"github.com/eidsvold/fpl-motw/internal/providers/fixture"
	"github.com/eidsvold/fpl-motw/internal/providers/fpl"
	"github.com/eidsvold/fpl-motw/internal/store"
)

// providerFactory assembles the league provider with shared transport
// wrappers (retry over rate limiting) and the optional cache decorator.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the provider plus a close function releasing any transport
// resources (the pacing ticker).
func (f providerFactory) build(cfg config.Config) (providers.LeagueProvider, func()) {
	var provider providers.LeagueProvider
	closeFn := func() {}

	switch cfg.Provider {
	case "fixture":
		provider = fixture.New()
	default:
		limited := providers.NewRateLimitedDoer(&http.Client{}, cfg.FPL.MinInterval, f.logger)
		closeFn = limited.Close
		// Retry wraps the limiter so every retry attempt is paced too.
		doer := providers.NewRetryingDoer(limited, f.logger, f.metrics, "fpl", cfg.FPL.RetryMax, cfg.FPL.RetryBackoff)
		provider = fpl.NewClient(fpl.Config{
			BaseURL:  cfg.FPL.BaseURL,
			Doer:     doer,
			MaxPages: cfg.FPL.MaxPages,
			Workers:  cfg.FPL.Workers,
		}, f.logger)
	}

	if cfg.Cache.Enabled {
		provider = providers.NewCachingProvider(provider, store.NewLeagueCache(), cfg.Cache.TTL, f.logger)
	}
	return provider, closeFn
}
