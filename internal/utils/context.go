// Package utils holds small helpers shared by the server and the client:
// request context keys, JSON and text response writers, JWT issuing and
// parsing, UUIDv7 generation, HMAC body signing and the resty client setup.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the subject of the verified bearer token.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the authenticated user id. ok is false when
// the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
