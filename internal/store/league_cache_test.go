package store

import (
	"testing"
	"time"

	"github.com/eidsvold/fpl-motw/internal/domain"
)

func TestLeagueCacheMissOnEmpty(t *testing.T) {
	cache := NewLeagueCache()

	if _, ok := cache.Get(42); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestLeagueCacheHitWithinTTL(t *testing.T) {
	cache := NewLeagueCache()
	data := domain.LeagueData{League: domain.League{ID: 42, Name: "Office League"}}

	cache.Set(42, data, time.Minute)

	got, ok := cache.Get(42)
	if !ok {
		t.Fatal("expected hit within ttl")
	}
	if got.League.Name != "Office League" {
		t.Fatalf("unexpected cached league %+v", got.League)
	}
}

func TestLeagueCacheExpires(t *testing.T) {
	cache := NewLeagueCache()
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	current := base
	cache.now = func() time.Time { return current }

	cache.Set(42, domain.LeagueData{League: domain.League{ID: 42}}, time.Minute)

	current = base.Add(30 * time.Second)
	if _, ok := cache.Get(42); !ok {
		t.Fatal("expected hit before expiry")
	}

	current = base.Add(2 * time.Minute)
	if _, ok := cache.Get(42); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestLeagueCacheIgnoresNonPositiveTTL(t *testing.T) {
	cache := NewLeagueCache()

	cache.Set(42, domain.LeagueData{League: domain.League{ID: 42}}, 0)

	if _, ok := cache.Get(42); ok {
		t.Fatal("expected nothing stored for zero ttl")
	}
}
