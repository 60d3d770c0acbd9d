package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [SQLiteErrorClassifier.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations and schema errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (the database file is busy or locked by another connection).
	Retryable
)

// Retry policy of journal and session writes.
const (
	writeAttempts     = 3
	writeRetryBackoff = 20 * time.Millisecond
)

// SQLiteErrorClassifier inspects the result code returned by the go-sqlite3
// driver and maps it to an [ErrorClassification] value.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify unwraps err to a sqlite3.Error. A nil error or an error that does
// not come from the driver is [NonRetryable].
//
// Retryable codes:
//   - SQLITE_BUSY, another connection holds the write lock
//   - SQLITE_LOCKED, a conflicting lock inside the same connection
//
// Everything else (SQLITE_CONSTRAINT, SQLITE_READONLY, SQLITE_CORRUPT,
// SQLITE_FULL and so on) is [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// execWithRetry runs a write statement, repeating it while the classifier
// reports a retryable failure. The backoff grows linearly and is cut short by
// ctx.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	classifier := NewSQLiteErrorClassifier()

	var (
		res sql.Result
		err error
	)
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || classifier.Classify(err) == NonRetryable || attempt == writeAttempts {
			return res, err
		}

		if db.logger != nil {
			db.logger.Debug().Err(err).Int("attempt", attempt).Msg("database busy, retrying write")
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * writeRetryBackoff):
		}
	}

	return res, err
}
