package providers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"

	"github.com/eidsvold/fpl-motw/internal/logging"
	"github.com/eidsvold/fpl-motw/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * time.Millisecond
	maxRetryBackoff      = 5 * time.Second
)

// retryingDoer wraps an HTTPDoer with retry behavior for transient failures:
// network errors, 5xx responses, and 429 responses. Any other status is
// handed back to the caller untouched so it can interpret 404 and friends.
// Requests must carry no body (all provider calls are idempotent GETs).
type retryingDoer struct {
	inner        HTTPDoer
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackoff   func() backoff.BackOff
}

// NewRetryingDoer wraps the given doer with retries. If maxAttempts/initial
// are <= 0, defaults are used. Backoff is capped exponential with jitter;
// a 429 Retry-After hint overrides the computed delay, bounded by the
// request's context deadline.
func NewRetryingDoer(inner HTTPDoer, logger *slog.Logger, recorder *metrics.Recorder, provider string, maxAttempts int, initial time.Duration) HTTPDoer {
	if provider == "" {
		provider = "provider"
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultRetryBackoff
	}
	return &retryingDoer{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: provider,
		maxAttempts:  maxAttempts,
		newBackoff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = initial
			bo.MaxInterval = maxRetryBackoff
			bo.MaxElapsedTime = 0
			return bo
		},
	}
}

func (d *retryingDoer) Do(req *http.Request) (*http.Response, error) {
	bo := d.newBackoff()
	var lastErr error

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		start := time.Now()
		resp, err := d.inner.Do(req)
		attemptErr := d.classify(resp, err)
		d.metrics.RecordProviderAttempt(d.providerName, time.Since(start), attemptErr)

		if attemptErr == nil {
			return resp, nil
		}
		lastErr = attemptErr

		delay := bo.NextBackOff()
		if rlErr, ok := AsRateLimitError(attemptErr); ok {
			d.metrics.RecordRateLimit(d.providerName, rlErr.RetryAfter)
			if rlErr.RetryAfter > 0 {
				delay = rlErr.RetryAfter
			}
		}

		if attempt == d.maxAttempts {
			break
		}

		d.logWarn(req, "provider request retry",
			"attempt", attempt,
			"max_attempts", d.maxAttempts,
			"delay", delay.String(),
			"error", attemptErr,
		)

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(delay):
		}
	}

	d.logWarn(req, "provider request failed", "attempts", d.maxAttempts, "error", lastErr)
	return nil, errors.Mark(lastErr, ErrProviderUnavailable)
}

// classify decides whether an attempt failed transiently. It drains and
// closes the response body for failed attempts so the connection can be
// reused.
func (d *retryingDoer) classify(resp *http.Response, err error) error {
	if err != nil {
		return errors.Wrap(err, "send request")
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		drainBody(resp)
		return &RateLimitError{
			Provider:   d.providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter,
		}
	case resp.StatusCode >= 500:
		drainBody(resp)
		return errors.Newf("provider status %d", resp.StatusCode)
	default:
		return nil
	}
}

func (d *retryingDoer) logWarn(req *http.Request, msg string, args ...any) {
	logger := logging.FromContext(req.Context(), d.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldProvider, d.providerName))
		logger.Warn(msg, args...)
	}
}

func drainBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}

// parseRetryAfter understands both delta-seconds and HTTP-date forms.
func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}
	return 0
}
