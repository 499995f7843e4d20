package providers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/eidsvold/fpl-motw/internal/logging"
)

// rateLimitedDoer enforces a minimum interval between outbound calls. The
// ticker is shared by every request passing through, so concurrent report
// requests collectively respect the upstream quota.
type rateLimitedDoer struct {
	inner    HTTPDoer
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedDoer returns an HTTPDoer that spaces calls at least interval
// apart. Calls block until the interval elapses or the request context ends.
func NewRateLimitedDoer(inner HTTPDoer, interval time.Duration, logger *slog.Logger) *rateLimitedDoer {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &rateLimitedDoer{
		inner:    inner,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (d *rateLimitedDoer) Do(req *http.Request) (*http.Response, error) {
	select {
	case <-req.Context().Done():
		logging.Warn(logging.FromContext(req.Context(), d.logger), "rate-limited request canceled",
			slog.String(logging.FieldPath, req.URL.Path))
		return nil, req.Context().Err()
	case <-d.ticker.C:
	}
	return d.inner.Do(req)
}

// Close releases the pacing ticker.
func (d *rateLimitedDoer) Close() {
	d.ticker.Stop()
}
