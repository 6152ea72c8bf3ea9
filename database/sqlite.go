package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

func init() {
	// modernc registers as "sqlite", which sqlx does not know uses ? bindvars
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLiteStore implements Store on a single SQLite file.
type SQLiteStore struct {
	db *sqlx.DB
	l  *logrus.Logger
}

// OpenSQLite opens (creating if needed) the database at path and runs migrations.
func OpenSQLite(path string, l *logrus.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer at a time; sqlite serializes writes anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	l.WithField("path", path).Info("sqlite storage initialized")
	return &SQLiteStore{db: db, l: l}, nil
}

// Ping checks the database handle.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
