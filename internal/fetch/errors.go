package fetch

import (
	"errors"
	"fmt"
)

// ErrFetchFailed matches every error returned by the fetch service
var ErrFetchFailed = errors.New("fetch failed")

// Error describes a failed fetch. StatusCode is zero when no response was received.
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports ErrFetchFailed for every fetch error
func (e *Error) Is(target error) bool {
	return target == ErrFetchFailed
}
