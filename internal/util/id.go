package util

import "github.com/google/uuid"

// NewID returns a unique identifier suitable for correlating a turn across
// log entries.
func NewID() string {
	return uuid.NewString()
}
