package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubmissionRepo(t *testing.T) (*submissionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &submissionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSubmission_Success(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO submissions").
		WithArgs("abc", 5, "[1,-1]", "[0,0,1]", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSubmission(context.Background(), models.Submission{
		APIKey:  "abc",
		Step:    5,
		Actions: models.ActionSet{Message: []int{1, -1}, Follows: []int{0, 0, 1}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubmission_ExecError(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO submissions").WillReturnError(errors.New("readonly"))

	err := repo.SaveSubmission(context.Background(), models.Submission{APIKey: "abc"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestLastSubmittedStep(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(step\), -1\) FROM submissions`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"step"}).AddRow(7))

	step, err := repo.LastSubmittedStep(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 7, step)
}

func TestLastSubmittedStep_QueryError(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM submissions").WillReturnError(errors.New("gone"))

	step, err := repo.LastSubmittedStep(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Equal(t, -1, step)
}

func TestDeleteSubmissions(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM submissions").
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteSubmissions(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubmissions_ExecError(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM submissions").WillReturnError(errors.New("readonly"))

	err := repo.DeleteSubmissions(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
