package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/migrations"
)

// DB is the local SQLite handle shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	if len(applied) > 0 && db.logger != nil {
		db.logger.Info().Strs("applied", applied).Msg("database migrated")
	}
	return nil
}
