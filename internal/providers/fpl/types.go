package fpl

// Wire shapes for the FPL API endpoints this client reads.

type standingsResponse struct {
	League    leagueResponse    `json:"league"`
	Standings standingsPageData `json:"standings"`
}

type leagueResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type standingsPageData struct {
	HasNext bool          `json:"has_next"`
	Page    int           `json:"page"`
	Results []standingRow `json:"results"`
}

type standingRow struct {
	Entry      int    `json:"entry"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Rank       int    `json:"rank"`
	Total      int    `json:"total"`
	EventTotal int    `json:"event_total"`
}

type bootstrapResponse struct {
	Events []eventRow `json:"events"`
}

type eventRow struct {
	ID          int  `json:"id"`
	Finished    bool `json:"finished"`
	DataChecked bool `json:"data_checked"`
}

type historyResponse struct {
	Current []historyRow `json:"current"`
}

type historyRow struct {
	Event       int `json:"event"`
	Points      int `json:"points"`
	TotalPoints int `json:"total_points"`
}
