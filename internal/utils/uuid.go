package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for users and traces.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. If the v7 generator fails (clock or
// entropy error) it falls back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID of any version.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
