package providers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestRateLimitedDoerSpacesCalls(t *testing.T) {
	var timestamps []time.Time
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		timestamps = append(timestamps, time.Now())
		return statusResponse(http.StatusOK, nil), nil
	})

	doer := NewRateLimitedDoer(inner, 30*time.Millisecond, nil)
	defer doer.Close()

	for i := 0; i < 3; i++ {
		resp, err := doer.Do(newTestRequest(t, context.Background()))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		resp.Body.Close()
	}

	if len(timestamps) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(timestamps))
	}
	for i := 1; i < len(timestamps); i++ {
		if gap := timestamps[i].Sub(timestamps[i-1]); gap < 25*time.Millisecond {
			t.Fatalf("calls %d and %d only %s apart", i-1, i, gap)
		}
	}
}

func TestRateLimitedDoerRespectsContext(t *testing.T) {
	inner := doerFunc(func(req *http.Request) (*http.Response, error) {
		t.Fatal("inner doer must not run after cancellation")
		return nil, nil
	})

	doer := NewRateLimitedDoer(inner, time.Hour, nil)
	defer doer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := doer.Do(newTestRequest(t, ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
