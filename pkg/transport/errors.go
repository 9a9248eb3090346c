package transport

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every RequestFailedError via errors.Is.
var ErrRequestFailed = errors.New("request failed")

// RequestFailedError is returned when the backend answers with a non-2xx status.
// Body holds the raw response text.
type RequestFailedError struct {
	StatusCode int
	Body       string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Body)
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}
