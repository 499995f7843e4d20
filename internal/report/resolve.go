package report

import (
	"sort"

	"github.com/eidsvold/fpl-motw/internal/domain"
)

// resolve names the winner of each period. Every entry sharing the maximum
// score is listed as a co-winner; a single arbitrary pick would misreport
// ties. Co-winners are ordered by manager id ascending so output is stable
// across runs.
func resolve(standings []periodStandings) []domain.PeriodResult {
	results := make([]domain.PeriodResult, 0, len(standings))
	for _, period := range standings {
		results = append(results, resolvePeriod(period))
	}
	return results
}

func resolvePeriod(standings periodStandings) domain.PeriodResult {
	best := standings.Rows[0].Points
	for _, row := range standings.Rows[1:] {
		if row.Points > best {
			best = row.Points
		}
	}

	winners := make([]domain.Entry, 0, 1)
	for _, row := range standings.Rows {
		if row.Points == best {
			winners = append(winners, row.Entry)
		}
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].ManagerID < winners[j].ManagerID })

	return domain.PeriodResult{
		Period:  standings.Period,
		Winners: winners,
		Points:  best,
	}
}
