package services

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a lookup by mobile, display code, or id
// matches no reservation.
var ErrNotFound = errors.New("reservation not found")

// ValidationError carries the full list of human-readable reasons a
// request was rejected, so callers can render every unmet condition
// inline. No record is created; the caller may retry with corrected
// input.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

// AsValidation returns the ValidationError wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
