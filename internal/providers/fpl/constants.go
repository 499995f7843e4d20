package fpl

import "time"

const providerName = "fpl"

const (
	defaultBaseURL     = "https://fantasy.premierleague.com/api"
	defaultUserAgent   = "fpl-motw/1.0"
	defaultHTTPTimeout = 20 * time.Second
	// Standings pages hold 50 entries each; 2000 pages bounds a league at
	// 100k entries.
	defaultMaxPages = 2000
	defaultWorkers  = 8
	// Provider payloads are small; this bound only guards against a
	// misbehaving upstream.
	maxBodyBytes = 6 << 20
)
