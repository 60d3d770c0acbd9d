package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-echo-feed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessions_LatestPerServer(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStorages()
	base := time.Now()

	require.NoError(t, st.SessionRepository.SaveSession(ctx, models.Session{APIKey: "old", ServerURL: "s1", UpdatedAt: base}))
	require.NoError(t, st.SessionRepository.SaveSession(ctx, models.Session{APIKey: "new", ServerURL: "s1", UpdatedAt: base.Add(time.Minute)}))
	require.NoError(t, st.SessionRepository.SaveSession(ctx, models.Session{APIKey: "other", ServerURL: "s2", UpdatedAt: base.Add(time.Hour)}))

	got, err := st.SessionRepository.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.APIKey)

	require.NoError(t, st.SessionRepository.DeleteSession(ctx, "new"))
	got, err = st.SessionRepository.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "old", got.APIKey)
}

func TestMemorySessions_UpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySessionRepository()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveSession(ctx, models.Session{APIKey: "k", ServerURL: "s", CreatedAt: created, UpdatedAt: created}))
	require.NoError(t, repo.SaveSession(ctx, models.Session{APIKey: "k", ServerURL: "s", CreatedAt: created.Add(time.Hour), UpdatedAt: created.Add(time.Hour)}))

	got, err := repo.GetSession(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
}

func TestMemorySessions_NotFound(t *testing.T) {
	_, err := NewMemoryStorages().SessionRepository.GetSession(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestMemorySubmissions_LastStep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStorages()

	step, err := st.SubmissionRepository.LastSubmittedStep(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, -1, step)

	require.NoError(t, st.SubmissionRepository.SaveSubmission(ctx, models.Submission{APIKey: "abc", Step: 3}))
	require.NoError(t, st.SubmissionRepository.SaveSubmission(ctx, models.Submission{APIKey: "abc", Step: 2}))
	require.NoError(t, st.SubmissionRepository.SaveSubmission(ctx, models.Submission{APIKey: "zzz", Step: 9}))

	step, err = st.SubmissionRepository.LastSubmittedStep(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, step)

	require.NoError(t, st.SubmissionRepository.DeleteSubmissions(ctx, "abc"))
	step, err = st.SubmissionRepository.LastSubmittedStep(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, -1, step)

	step, err = st.SubmissionRepository.LastSubmittedStep(ctx, "zzz")
	require.NoError(t, err)
	assert.Equal(t, 9, step)
}

func TestMemoryStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, NewMemoryStorages().Close())
}
