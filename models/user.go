package models

import "time"

// User represents an account record owned by the credential store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the generated unique identifier of the user (UUIDv7).
	ID string `json:"id"`

	// Name is the free-text display name of the user.
	Name string `json:"name"`

	// Email is the unique account identifier. It is also the key used by
	// the lockout governor. Compared case-sensitively, as stored.
	Email string `json:"email"`

	// PasswordHash is the argon2id PHC string of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile or password change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
