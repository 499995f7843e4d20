package providers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/eidsvold/fpl-motw/internal/metrics"
)

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func statusResponse(status int, header http.Header) *http.Response {
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("{}")),
		Header:     header,
	}
}

func newTestRequest(t *testing.T, ctx context.Context) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://example.com/path", nil)
	if err != nil {
		t.Fatalf("failed building request: %v", err)
	}
	return req
}

func TestRetryingDoerRetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls < 3 {
			return statusResponse(http.StatusBadGateway, nil), nil
		}
		return statusResponse(http.StatusOK, nil), nil
	})

	recorder := metrics.NewRecorder()
	doer := NewRetryingDoer(inner, nil, recorder, "fpl", 3, time.Millisecond)

	resp, err := doer.Do(newTestRequest(t, context.Background()))
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	defer resp.Body.Close()

	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if recorder.ProviderCalls("fpl") != 3 || recorder.ProviderErrors("fpl") != 2 {
		t.Fatalf("unexpected metrics %+v", recorder.Snapshot("fpl"))
	}
}

func TestRetryingDoerGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return statusResponse(http.StatusServiceUnavailable, nil), nil
	})

	doer := NewRetryingDoer(inner, nil, nil, "fpl", 2, time.Millisecond)

	_, err := doer.Do(newTestRequest(t, context.Background()))
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestRetryingDoerPassesThroughNonRetryableStatuses(t *testing.T) {
	calls := 0
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return statusResponse(http.StatusNotFound, nil), nil
	})

	doer := NewRetryingDoer(inner, nil, nil, "fpl", 3, time.Millisecond)

	resp, err := doer.Do(newTestRequest(t, context.Background()))
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	defer resp.Body.Close()

	if calls != 1 {
		t.Fatalf("404 must not be retried, got %d attempts", calls)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRetryingDoerHonorsRetryAfter(t *testing.T) {
	calls := 0
	var gaps []time.Time
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		gaps = append(gaps, time.Now())
		if calls == 1 {
			header := make(http.Header)
			header.Set("Retry-After", "1")
			return statusResponse(http.StatusTooManyRequests, header), nil
		}
		return statusResponse(http.StatusOK, nil), nil
	})

	recorder := metrics.NewRecorder()
	doer := NewRetryingDoer(inner, nil, recorder, "fpl", 3, time.Millisecond)

	resp, err := doer.Do(newTestRequest(t, context.Background()))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	defer resp.Body.Close()

	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
	if wait := gaps[1].Sub(gaps[0]); wait < time.Second {
		t.Fatalf("expected Retry-After of 1s to be honored, waited %s", wait)
	}
	if recorder.RateLimitHits("fpl") != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", recorder.RateLimitHits("fpl"))
	}
	if recorder.LastRetryAfter("fpl") != time.Second {
		t.Fatalf("expected recorded Retry-After of 1s, got %s", recorder.LastRetryAfter("fpl"))
	}
}

func TestRetryingDoerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		cancel()
		return statusResponse(http.StatusBadGateway, nil), nil
	})

	doer := NewRetryingDoer(inner, nil, nil, "fpl", 5, time.Minute)

	_, err := doer.Do(newTestRequest(t, ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt before cancellation, got %d", calls)
	}
}

func TestRetryingDoerWrapsNetworkErrors(t *testing.T) {
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	doer := NewRetryingDoer(inner, nil, nil, "fpl", 2, time.Millisecond)

	_, err := doer.Do(newTestRequest(t, context.Background()))
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("2"); got != 2*time.Second {
		t.Fatalf("expected 2s, got %s", got)
	}
	if got := parseRetryAfter("-1"); got != 0 {
		t.Fatalf("expected 0 for negative seconds, got %s", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("expected 0 for empty header, got %s", got)
	}
	if got := parseRetryAfter("garbage"); got != 0 {
		t.Fatalf("expected 0 for malformed header, got %s", got)
	}
	future := time.Now().Add(3 * time.Second).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > 3*time.Second {
		t.Fatalf("expected positive duration under 3s for HTTP-date, got %s", got)
	}
}
