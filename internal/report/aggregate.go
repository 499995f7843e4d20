package report

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/eidsvold/fpl-motw/internal/domain"
	"github.com/eidsvold/fpl-motw/internal/providers"
)

// periodStandings is one period's complete table, every league entry
// present with its finalized score.
type periodStandings struct {
	Period int
	Rows   []domain.Standing
}

// aggregate groups gameweek records into per-period standings tables. A
// period makes the cut only when every entry in the league has a finalized
// record for it; partially scored periods are dropped entirely. Pure
// function, no I/O.
func aggregate(entries []domain.Entry, records []domain.GameweekRecord) ([]periodStandings, error) {
	byManager := make(map[int]domain.Entry, len(entries))
	for _, entry := range entries {
		if _, dup := byManager[entry.ManagerID]; dup {
			return nil, errors.Mark(
				errors.Newf("manager %d appears twice in league entries", entry.ManagerID),
				providers.ErrProviderDataInvalid,
			)
		}
		byManager[entry.ManagerID] = entry
	}

	type periodAccumulator struct {
		rows      []domain.Standing
		finalized int
		seen      map[int]struct{}
	}
	periods := make(map[int]*periodAccumulator)

	for _, record := range records {
		if record.Period < 1 {
			return nil, errors.Mark(
				errors.Newf("record for manager %d has period %d", record.ManagerID, record.Period),
				providers.ErrProviderDataInvalid,
			)
		}
		entry, ok := byManager[record.ManagerID]
		if !ok {
			return nil, errors.Mark(
				errors.Newf("record references manager %d outside the league", record.ManagerID),
				providers.ErrProviderDataInvalid,
			)
		}

		acc := periods[record.Period]
		if acc == nil {
			acc = &periodAccumulator{seen: make(map[int]struct{}, len(entries))}
			periods[record.Period] = acc
		}
		if _, dup := acc.seen[record.ManagerID]; dup {
			return nil, errors.Mark(
				errors.Newf("manager %d has two records for period %d", record.ManagerID, record.Period),
				providers.ErrProviderDataInvalid,
			)
		}
		acc.seen[record.ManagerID] = struct{}{}

		acc.rows = append(acc.rows, domain.Standing{
			Entry:            entry,
			Points:           record.Points,
			CumulativePoints: record.TotalPoints,
		})
		if record.Finalized {
			acc.finalized++
		}
	}

	out := make([]periodStandings, 0, len(periods))
	for period, acc := range periods {
		if len(acc.rows) != len(entries) || acc.finalized != len(entries) {
			continue
		}
		rows := acc.rows
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Points != rows[j].Points {
				return rows[i].Points > rows[j].Points
			}
			return rows[i].Entry.ManagerID < rows[j].Entry.ManagerID
		})
		out = append(out, periodStandings{Period: period, Rows: rows})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}
