package providers

import (
	"context"
	"net/http"

	"github.com/eidsvold/fpl-motw/internal/domain"
)

// LeagueProvider defines how upstream league data is fetched and normalized.
// Implementations return the league's metadata, its entries, and every
// gameweek record the provider has released for those entries.
type LeagueProvider interface {
	FetchLeagueData(ctx context.Context, leagueID int) (domain.LeagueData, error)
}

// HTTPDoer executes a single HTTP request. The retry and rate-limit
// decorators in this package wrap HTTPDoer rather than LeagueProvider so a
// failed standings page is retried on its own instead of refetching the
// whole league.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
