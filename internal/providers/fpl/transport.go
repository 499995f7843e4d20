package fpl

import (
	"net/http"
	"strings"

	"github.com/eidsvold/fpl-motw/internal/providers"
)

func resolveDoer(doer providers.HTTPDoer) providers.HTTPDoer {
	if doer != nil {
		return doer
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveMaxPages(max int) int {
	if max <= 0 {
		return defaultMaxPages
	}
	return max
}

func resolveWorkers(workers int) int {
	if workers <= 0 {
		return defaultWorkers
	}
	return workers
}

func resolveUserAgent(ua string) string {
	if ua == "" {
		return defaultUserAgent
	}
	return ua
}
