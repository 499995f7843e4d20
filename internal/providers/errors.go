package providers

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// Failure kinds surfaced by league providers. Callers match them with
// errors.Is; the HTTP layer owns the translation to status codes.
var (
	// ErrNotFound means the provider confirmed the league does not exist.
	ErrNotFound = errors.New("league not found")
	// ErrProviderUnavailable means a transient provider failure survived all
	// retries. Safe for the caller to retry later.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrProviderDataInvalid means the provider returned structurally
	// unexpected data. Not retryable.
	ErrProviderDataInvalid = errors.New("provider data invalid")
)

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
