package report

import "github.com/cockroachdb/errors"

// Failure kinds owned by the report pipeline. Provider failure kinds pass
// through from internal/providers untouched.
var (
	// ErrInvalidInput means the league identifier failed validation before
	// any provider call was made.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTimeout means the overall pipeline deadline expired.
	ErrTimeout = errors.New("report generation timed out")
)
