package providers

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{Provider: "fpl", StatusCode: 429, RetryAfter: 2 * time.Second}
	if got := err.Error(); got != "provider rate limited (status=429)" {
		t.Fatalf("unexpected message %q", got)
	}

	custom := &RateLimitError{Message: "slow down"}
	if got := custom.Error(); got != "slow down" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	inner := &RateLimitError{Provider: "fpl", RetryAfter: time.Second}
	wrapped := errors.Wrap(inner, "page 3")

	rlErr, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatal("expected to unwrap RateLimitError")
	}
	if rlErr.RetryAfter != time.Second {
		t.Fatalf("unexpected RetryAfter %s", rlErr.RetryAfter)
	}

	if _, ok := AsRateLimitError(errors.New("other")); ok {
		t.Fatal("plain errors must not read as rate limit errors")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	marked := errors.Mark(errors.New("boom"), ErrProviderUnavailable)
	if !errors.Is(marked, ErrProviderUnavailable) {
		t.Fatal("expected mark to match its sentinel")
	}
	if errors.Is(marked, ErrNotFound) || errors.Is(marked, ErrProviderDataInvalid) {
		t.Fatal("sentinels must not overlap")
	}
}
