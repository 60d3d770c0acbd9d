package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-echo-feed/internal/config"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
)

// busyTimeoutMillis lets SQLite wait for a competing writer (a second client
// on the same file) before reporting SQLITE_BUSY.
const busyTimeoutMillis = 2000

func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// single writer: the poll job and submission goroutines share one
	// connection
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to database")

	return &DB{DB: conn, logger: log}, nil
}

// sqliteDSN appends the driver pragmas unless the caller already passed a
// query string. In-memory databases get no WAL.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn
	}

	params := fmt.Sprintf("_busy_timeout=%d&_foreign_keys=on", busyTimeoutMillis)
	if !isMemoryDSN(dsn) {
		params += "&_journal_mode=WAL"
	}
	return dsn + "?" + params
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// ensureDBFile creates a plain database path and its directory. URI and
// in-memory DSNs are left to the driver.
func ensureDBFile(dsn string) error {
	if dsn == "" || strings.HasPrefix(dsn, "file:") || isMemoryDSN(dsn) {
		return nil
	}

	if _, err := os.Stat(dsn); !os.IsNotExist(err) {
		return nil
	}

	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
	}
	f, err := os.Create(dsn)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
