package config

import "time"

const (
	envFPLBaseURL      = "FPL_API_BASE_URL"
	envFPLMaxPages     = "MAX_STANDINGS_PAGES"
	envFPLWorkers      = "FETCH_WORKERS"
	envFPLRetryMax     = "RETRY_MAX_ATTEMPTS"
	envFPLRetryBackoff = "RETRY_BACKOFF"
	envFPLMinInterval  = "OUTBOUND_MIN_INTERVAL"

	defaultFPLBaseURL = "https://fantasy.premierleague.com/api"
	// Standings pages hold 50 entries, so 2000 pages caps a league at 100k
	// entries (carried over from the upstream tool's guard).
	defaultFPLMaxPages     = 2000
	defaultFPLWorkers      = 8
	defaultFPLRetryMax     = 3
	defaultFPLRetryBackoff = 200 * Duration(time.Millisecond)
	// Minimum spacing between outbound calls keeps us under the FPL API's
	// informal quota.
	defaultFPLMinInterval = 50 * Duration(time.Millisecond)
)

// FPLConfig controls how we talk to the Fantasy Premier League API.
type FPLConfig struct {
	BaseURL      string
	MaxPages     int
	Workers      int
	RetryMax     int
	RetryBackoff Duration
	MinInterval  Duration
}

func loadFPL() FPLConfig {
	return FPLConfig{
		BaseURL:      envOrDefault(envFPLBaseURL, defaultFPLBaseURL),
		MaxPages:     intEnvOrDefault(envFPLMaxPages, defaultFPLMaxPages),
		Workers:      intEnvOrDefault(envFPLWorkers, defaultFPLWorkers),
		RetryMax:     intEnvOrDefault(envFPLRetryMax, defaultFPLRetryMax),
		RetryBackoff: durationEnvOrDefault(envFPLRetryBackoff, defaultFPLRetryBackoff),
		MinInterval:  durationEnvOrDefault(envFPLMinInterval, defaultFPLMinInterval),
	}
}
