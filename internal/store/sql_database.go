package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/migrations"
)

// DB wraps a *sql.DB together with the driver-specific error classifier
// and the migration set of the side (client or server) it was opened for.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies all pending migrations for this database.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.MigrateClient(db.DB)
	}
	return db.migrate(db.DB)
}

// Retryable reports whether err is a transient failure of this database.
func (db *DB) Retryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
