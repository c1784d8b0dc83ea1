package models

import "time"

// RegisterResponse is returned after a successful registration.
// It deliberately has no password fields.
type RegisterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

// IDResponse confirms an operation on a single user.
type IDResponse struct {
	ID string `json:"id"`
}

// ErrorBody is the JSON envelope for every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request. RetryAfter is set only when the
// caller has been locked out, and holds the RFC 3339 time the cooldown ends.
type ErrorDetail struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	RetryAfter string `json:"retry_after,omitempty"`
}
