package sync

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrPushFailed      = errors.New("remote push failed")
	ErrParentNotSynced = errors.New("discipline has no remote id")
	ErrTransport       = errors.New("remote unreachable")
)

// StatusError is returned by the remote client for a non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("remote status %d: %s", e.Code, http.StatusText(e.Code))
}

func (e *StatusError) StatusCode() int {
	return e.Code
}

// StatusCode extracts the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
