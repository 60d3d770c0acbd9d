package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier for correlating client log
// lines with provider requests. Falls back to a random v4 value.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
