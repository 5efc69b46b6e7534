package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/nasadmin/net/resp"
)

// ErrCircuitOpen is returned while the breaker rejects requests
var ErrCircuitOpen = errors.New("circuit open")

// StatusError is returned for responses with a status of 400 or above
type StatusError struct {
	URL       string
	Exception *resp.Exception
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Exception.Error())
}

// Unwrap exposes the decoded exception to errors.As
func (e *StatusError) Unwrap() error { return e.Exception }

// StatusCode returns the HTTP status of the response
func (e *StatusError) StatusCode() int { return e.Exception.Status }

// isServerFailure reports whether err counts against the breaker. Client
// errors and cancelled or expired contexts do not.
func isServerFailure(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode() >= 500
	}
	return true
}
