package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrTooManyAttempts    = errors.New("too many failed attempts")
	ErrEmailAlreadyTaken  = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCreationFailed     = errors.New("user creation failed")
	ErrUpdateFailed       = errors.New("user update failed")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidListQuery   = errors.New("invalid list query")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// TooManyAttemptsError is returned by registration while the email is inside
// a lockout cooldown. It matches [ErrTooManyAttempts] with errors.Is.
type TooManyAttemptsError struct {
	// Until is the end of the cooldown.
	Until time.Time
	// RetryAfter is Until minus the time the failure was recorded.
	RetryAfter time.Duration
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrTooManyAttempts, e.Until.UTC().Format(time.RFC3339))
}

func (e *TooManyAttemptsError) Is(target error) bool {
	return target == ErrTooManyAttempts
}
