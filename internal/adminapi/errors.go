package adminapi

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when the call to the backend never completed:
	// connection refused, DNS failure, timeout or cancellation.
	ErrTransport = errors.New("backend unreachable")

	// ErrUpstreamStatus is returned when the backend answered with a non-2xx status.
	ErrUpstreamStatus = errors.New("backend returned non-success status")

	// ErrDecode is returned when a 2xx body is not a result envelope.
	ErrDecode = errors.New("malformed backend response")
)

// StatusError carries the status code and raw body of a non-2xx reply.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}
