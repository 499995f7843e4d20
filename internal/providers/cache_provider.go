package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/eidsvold/fpl-motw/internal/domain"
	"github.com/eidsvold/fpl-motw/internal/logging"
	"github.com/eidsvold/fpl-motw/internal/store"
)

// cachingProvider serves league data from a short-lived cache before falling
// back to the wrapped provider. Failures are never cached.
type cachingProvider struct {
	inner  LeagueProvider
	cache  *store.LeagueCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachingProvider wraps a provider with a TTL cache.
func NewCachingProvider(inner LeagueProvider, cache *store.LeagueCache, ttl time.Duration, logger *slog.Logger) LeagueProvider {
	if cache == nil {
		cache = store.NewLeagueCache()
	}
	return &cachingProvider{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (p *cachingProvider) FetchLeagueData(ctx context.Context, leagueID int) (domain.LeagueData, error) {
	if data, ok := p.cache.Get(leagueID); ok {
		logging.Info(logging.FromContext(ctx, p.logger), "served cached league data",
			slog.Int(logging.FieldLeagueID, leagueID),
			slog.Int(logging.FieldCount, len(data.Entries)),
		)
		return data, nil
	}

	data, err := p.inner.FetchLeagueData(ctx, leagueID)
	if err != nil {
		return domain.LeagueData{}, err
	}

	p.cache.Set(leagueID, data, p.ttl)
	return data, nil
}
