package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for accounts, sessions,
// documents and request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id can be used as a client-chosen document or
// account identifier: 1 to 36 characters of [a-zA-Z0-9._-], not starting
// with a special character.
func IsValidID(id string) bool {
	if id == "" || len(id) > 36 {
		return false
	}
	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case (r == '.' || r == '_' || r == '-') && i > 0:
		default:
			return false
		}
	}
	return true
}
