package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type reportStats struct {
	generated   int
	failures    int
	lastPeriods int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// report generation. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	reports reportStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordReport tracks one report pipeline run.
func (r *Recorder) RecordReport(duration time.Duration, periods int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if err != nil {
		r.reports.failures++
	} else {
		r.reports.generated++
		r.reports.lastPeriods = periods
	}
	r.reports.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReport(duration, periods, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// ReportsGenerated returns the number of successful report runs.
func (r *Recorder) ReportsGenerated() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reports.generated
}

// ReportFailures returns the number of failed report runs.
func (r *Recorder) ReportFailures() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reports.failures
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
