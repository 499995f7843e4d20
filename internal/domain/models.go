package domain

// League identifies an FPL classic mini-league.
type League struct {
	ID   int
	Name string
}

// Entry is one manager's participation in a league.
type Entry struct {
	ManagerID   int
	ManagerName string
	TeamName    string
}

// GameweekRecord is one (entry, gameweek) scoring row as reported by the
// provider. Finalized means the gameweek's bonus points have been settled.
type GameweekRecord struct {
	ManagerID   int
	Period      int
	Points      int
	TotalPoints int
	Finalized   bool
}

// LeagueData is the full raw snapshot fetched for one league.
type LeagueData struct {
	League  League
	Entries []Entry
	Records []GameweekRecord
}

// Standing is one entry's line in a single gameweek's table.
type Standing struct {
	Entry            Entry
	Points           int
	CumulativePoints int
}

// PeriodResult names the winner(s) of one gameweek. Winners holds every
// entry that scored the maximum, ordered by manager id ascending.
type PeriodResult struct {
	Period  int
	Winners []Entry
	Points  int
}

// Report is the resolved manager-of-the-week table for a league, one
// PeriodResult per finalized gameweek in ascending order.
type Report struct {
	League  League
	Results []PeriodResult
}

// ReportFile is the serialized, downloadable form of a Report.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
