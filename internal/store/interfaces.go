package store

import (
	"context"

	"github.com/MKhiriev/go-echo-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the participant session so that a restarted
// client resumes with the same API key.
type SessionRepository interface {
	// SaveSession inserts the session or refreshes its server URL and
	// updated_at when the key is already stored.
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns the most recently used session issued by
	// serverURL, or [ErrLocalSessionNotFound].
	GetSession(ctx context.Context, serverURL string) (models.Session, error)
	// DeleteSession removes the session with apiKey. Deleting an unknown key
	// is not an error.
	DeleteSession(ctx context.Context, apiKey string) error
}

// SubmissionRepository is the submission journal.
type SubmissionRepository interface {
	// SaveSubmission appends one submission attempt.
	SaveSubmission(ctx context.Context, submission models.Submission) error
	// LastSubmittedStep returns the highest step journaled for apiKey, or
	// -1 when nothing was submitted yet.
	LastSubmittedStep(ctx context.Context, apiKey string) (int, error)
	// DeleteSubmissions drops every journal row of apiKey. Keys are reissued
	// once the provider starts a new simulation, and its steps restart at 0.
	DeleteSubmissions(ctx context.Context, apiKey string) error
}
