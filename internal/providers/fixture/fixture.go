package fixture

import (
	"context"

	"github.com/eidsvold/fpl-motw/internal/domain"
)

// Provider returns a static league useful for local testing and
// bootstrapping without hitting the FPL API. Gameweeks 1 and 2 are
// finalized; gameweek 3 is still being scored and must never show up in a
// report.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchLeagueData returns a deterministic two-entry league.
func (p *Provider) FetchLeagueData(ctx context.Context, leagueID int) (domain.LeagueData, error) {
	_ = ctx

	league := domain.League{ID: leagueID, Name: "Fixture League"}
	entries := []domain.Entry{
		{ManagerID: 101, ManagerName: "Alice Example", TeamName: "Alicante Athletic"},
		{ManagerID: 102, ManagerName: "Bob Example", TeamName: "Bobcats United"},
	}
	records := []domain.GameweekRecord{
		{ManagerID: 101, Period: 1, Points: 50, TotalPoints: 50, Finalized: true},
		{ManagerID: 102, Period: 1, Points: 70, TotalPoints: 70, Finalized: true},
		{ManagerID: 101, Period: 2, Points: 60, TotalPoints: 110, Finalized: true},
		{ManagerID: 102, Period: 2, Points: 60, TotalPoints: 130, Finalized: true},
		{ManagerID: 101, Period: 3, Points: 44, TotalPoints: 154, Finalized: false},
		{ManagerID: 102, Period: 3, Points: 38, TotalPoints: 168, Finalized: false},
	}

	return domain.LeagueData{
		League:  league,
		Entries: entries,
		Records: records,
	}, nil
}
