package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrLocked              = errors.New("too many failed attempts")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("request rejected")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// APIError is a non-2xx response of the server.
type APIError struct {
	StatusCode int

	// Message is the server's error message, or the status text when the
	// body carried none.
	Message string

	// RetryAfter is when a lockout cooldown ends. Zero unless the server
	// reported one.
	RetryAfter time.Time

	kind error
}

func (e *APIError) Error() string {
	if !e.RetryAfter.IsZero() {
		return fmt.Sprintf("http %d: %s (retry after %s)", e.StatusCode, e.Message, e.RetryAfter.Local().Format(time.RFC3339))
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel for the status code, or nil for statuses
// without one.
func (e *APIError) Unwrap() error {
	return e.kind
}
