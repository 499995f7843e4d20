package store

import (
	"sync"
	"time"

	"github.com/eidsvold/fpl-motw/internal/domain"
)

// LeagueCache keeps a thread-safe, short-lived snapshot of fetched league
// data keyed by league id. It is an optimization for repeated downloads of
// the same league; correctness never depends on a hit.
type LeagueCache struct {
	mu    sync.RWMutex
	items map[int]cachedLeague
	now   func() time.Time
}

type cachedLeague struct {
	data    domain.LeagueData
	expires time.Time
}

// NewLeagueCache constructs an empty LeagueCache.
func NewLeagueCache() *LeagueCache {
	return &LeagueCache{
		items: make(map[int]cachedLeague),
		now:   time.Now,
	}
}

// Get returns the cached snapshot for a league when present and not expired.
func (c *LeagueCache) Get(leagueID int) (domain.LeagueData, bool) {
	c.mu.RLock()
	item, ok := c.items[leagueID]
	c.mu.RUnlock()

	if !ok || c.now().After(item.expires) {
		return domain.LeagueData{}, false
	}
	return item.data, true
}

// Set stores a snapshot for a league with the given time-to-live. A
// non-positive ttl stores nothing.
func (c *LeagueCache) Set(leagueID int, data domain.LeagueData, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[leagueID] = cachedLeague{
		data:    data,
		expires: c.now().Add(ttl),
	}
}
