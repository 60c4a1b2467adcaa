// Package uuid generates time-ordered identifiers for records and requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. UUIDv7 sorts by creation time, which keeps
// audit rows in insertion order on the primary key index.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lowercase form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// RequestID returns the canonical form of a caller-supplied request ID,
// or a fresh one when the header value is empty or not a UUID.
func RequestID(header string) string {
	if header != "" {
		if id, err := Parse(header); err == nil {
			return id
		}
	}
	return New()
}
