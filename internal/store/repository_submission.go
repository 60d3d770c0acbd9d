package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/models"
)

type submissionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	return &submissionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *submissionRepository) SaveSubmission(ctx context.Context, submission models.Submission) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSubmissionQuery(submission)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "submissionRepository.SaveSubmission").
			Str("api_key", submission.APIKey).
			Int("step", submission.Step).
			Msg("failed to journal submission")
		return fmt.Errorf("%w: save submission: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *submissionRepository) LastSubmittedStep(ctx context.Context, apiKey string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLastSubmittedStepQuery(apiKey)
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	step := -1
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&step); err != nil {
		log.Err(err).
			Str("func", "submissionRepository.LastSubmittedStep").
			Str("api_key", apiKey).
			Msg("failed to query last submitted step")
		return -1, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return step, nil
}

func (s *submissionRepository) DeleteSubmissions(ctx context.Context, apiKey string) error {
	query, args, err := buildDeleteSubmissionsQuery(apiKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "submissionRepository.DeleteSubmissions").
			Str("api_key", apiKey).
			Msg("failed to clear submission journal")
		return fmt.Errorf("%w: delete submissions: %v", ErrExecutingStatement, err)
	}

	return nil
}
