package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("api_key", session.APIKey).
			Msg("failed to upsert session")
		return fmt.Errorf("%w: save session: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context, serverURL string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(serverURL)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&session.APIKey,
		&session.ServerURL,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Str("server_url", serverURL).
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context, apiKey string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(apiKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Str("api_key", apiKey).
			Msg("failed to delete session")
		return fmt.Errorf("%w: delete session: %v", ErrExecutingStatement, err)
	}

	return nil
}
