package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-echo-feed/models"
)

const (
	sessionsTable    = "sessions"
	submissionsTable = "submissions"
)

func buildUpsertSessionQuery(session models.Session) (string, []any, error) {
	return sq.Insert(sessionsTable).
		Columns("api_key", "server_url", "created_at", "updated_at").
		Values(session.APIKey, session.ServerURL, session.CreatedAt.UTC(), session.UpdatedAt.UTC()).
		Suffix("ON CONFLICT(api_key) DO UPDATE SET server_url = excluded.server_url, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectSessionQuery(serverURL string) (string, []any, error) {
	return sq.Select("api_key", "server_url", "created_at", "updated_at").
		From(sessionsTable).
		Where(sq.Eq{"server_url": serverURL}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
}

func buildDeleteSessionQuery(apiKey string) (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}

func buildInsertSubmissionQuery(submission models.Submission) (string, []any, error) {
	message, err := json.Marshal(submission.Actions.Message)
	if err != nil {
		return "", nil, fmt.Errorf("encode message: %w", err)
	}
	follows, err := json.Marshal(submission.Actions.Follows)
	if err != nil {
		return "", nil, fmt.Errorf("encode follows: %w", err)
	}

	submittedAt := submission.SubmittedAt
	if submittedAt == 0 {
		submittedAt = time.Now().Unix()
	}

	return sq.Insert(submissionsTable).
		Columns("api_key", "step", "message", "follows", "error", "submitted_at").
		Values(submission.APIKey, submission.Step, string(message), string(follows), submission.Error, submittedAt).
		ToSql()
}

func buildDeleteSubmissionsQuery(apiKey string) (string, []any, error) {
	return sq.Delete(submissionsTable).
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}

func buildLastSubmittedStepQuery(apiKey string) (string, []any, error) {
	return sq.Select("COALESCE(MAX(step), -1)").
		From(submissionsTable).
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}
