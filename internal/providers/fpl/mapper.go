package fpl

import (
	"github.com/cockroachdb/errors"

	"github.com/eidsvold/fpl-motw/internal/domain"
	"github.com/eidsvold/fpl-motw/internal/providers"
)

// eventTable summarizes the bootstrap event list: every known gameweek and
// whether its scoring has been settled.
type eventTable struct {
	finalized map[int]bool
	horizon   int
}

func buildEventTable(leagueID int, events []eventRow) (eventTable, error) {
	if len(events) == 0 {
		return eventTable{}, errors.Mark(
			errors.Newf("league %d: bootstrap response carries no events", leagueID),
			providers.ErrProviderDataInvalid,
		)
	}

	table := eventTable{finalized: make(map[int]bool, len(events))}
	for _, event := range events {
		if event.ID <= 0 {
			return eventTable{}, errors.Mark(
				errors.Newf("league %d: bootstrap event with id %d", leagueID, event.ID),
				providers.ErrProviderDataInvalid,
			)
		}
		if _, dup := table.finalized[event.ID]; dup {
			return eventTable{}, errors.Mark(
				errors.Newf("league %d: bootstrap event %d listed twice", leagueID, event.ID),
				providers.ErrProviderDataInvalid,
			)
		}
		table.finalized[event.ID] = event.Finished && event.DataChecked
		if event.ID > table.horizon {
			table.horizon = event.ID
		}
	}
	return table, nil
}

func (t eventTable) knows(period int) bool {
	_, ok := t.finalized[period]
	return ok
}

func (t eventTable) isFinalized(period int) bool {
	return t.finalized[period]
}

// mapStandings converts standings rows into league entries, rejecting rows
// that cannot identify a manager.
func mapStandings(leagueID int, rows []standingRow) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		switch {
		case row.Entry <= 0:
			return nil, errors.Mark(
				errors.Newf("league %d: standings row with entry id %d", leagueID, row.Entry),
				providers.ErrProviderDataInvalid,
			)
		case row.PlayerName == "":
			return nil, errors.Mark(
				errors.Newf("league %d: entry %d has no manager name", leagueID, row.Entry),
				providers.ErrProviderDataInvalid,
			)
		case row.EntryName == "":
			return nil, errors.Mark(
				errors.Newf("league %d: entry %d has no team name", leagueID, row.Entry),
				providers.ErrProviderDataInvalid,
			)
		}
		entries = append(entries, domain.Entry{
			ManagerID:   row.Entry,
			ManagerName: row.PlayerName,
			TeamName:    row.EntryName,
		})
	}
	return entries, nil
}

// mapHistory converts an entry's gameweek history into records, stamping
// each with whether its gameweek has been finalized.
func mapHistory(leagueID int, entry domain.Entry, rows []historyRow, events eventTable) ([]domain.GameweekRecord, error) {
	records := make([]domain.GameweekRecord, 0, len(rows))
	seen := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		if !events.knows(row.Event) {
			return nil, errors.Mark(
				errors.Newf("league %d: entry %d reports unknown gameweek %d", leagueID, entry.ManagerID, row.Event),
				providers.ErrProviderDataInvalid,
			)
		}
		if _, dup := seen[row.Event]; dup {
			return nil, errors.Mark(
				errors.Newf("league %d: entry %d repeats gameweek %d", leagueID, entry.ManagerID, row.Event),
				providers.ErrProviderDataInvalid,
			)
		}
		seen[row.Event] = struct{}{}
		records = append(records, domain.GameweekRecord{
			ManagerID:   entry.ManagerID,
			Period:      row.Event,
			Points:      row.Points,
			TotalPoints: row.TotalPoints,
			Finalized:   events.isFinalized(row.Event),
		})
	}
	return records, nil
}
