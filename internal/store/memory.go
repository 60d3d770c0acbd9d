package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-echo-feed/models"
)

// memorySessionRepository keeps sessions in a map. Used by dummy bots, which
// must not share a database file, and by tests.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[string]models.Session)}
}

func (m *memorySessionRepository) SaveSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.sessions[session.APIKey]; ok && !prev.CreatedAt.IsZero() {
		session.CreatedAt = prev.CreatedAt
	}
	m.sessions[session.APIKey] = session
	return nil
}

func (m *memorySessionRepository) GetSession(_ context.Context, serverURL string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		found  models.Session
		latest time.Time
		ok     bool
	)
	for _, s := range m.sessions {
		if s.ServerURL != serverURL {
			continue
		}
		if !ok || s.UpdatedAt.After(latest) {
			found, latest, ok = s, s.UpdatedAt, true
		}
	}
	if !ok {
		return models.Session{}, ErrLocalSessionNotFound
	}
	return found, nil
}

func (m *memorySessionRepository) DeleteSession(_ context.Context, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, apiKey)
	return nil
}

type memorySubmissionRepository struct {
	mu      sync.RWMutex
	journal []models.Submission
}

func (m *memorySubmissionRepository) SaveSubmission(_ context.Context, submission models.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if submission.SubmittedAt == 0 {
		submission.SubmittedAt = time.Now().Unix()
	}
	m.journal = append(m.journal, submission)
	return nil
}

func (m *memorySubmissionRepository) LastSubmittedStep(_ context.Context, apiKey string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	last := -1
	for _, s := range m.journal {
		if s.APIKey == apiKey && s.Step > last {
			last = s.Step
		}
	}
	return last, nil
}

func (m *memorySubmissionRepository) DeleteSubmissions(_ context.Context, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.journal = slices.DeleteFunc(m.journal, func(s models.Submission) bool {
		return s.APIKey == apiKey
	})
	return nil
}
