package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/migrations"
)

const (
	pingAttempts  = 4
	pingBaseDelay = 500 * time.Millisecond
)

// NewConnectPostgres opens the server database through the pgx stdlib
// driver. The initial ping is retried with exponential backoff so the server
// can start before the database accepts connections.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database
	backoff := retry.WithMaxRetries(pingAttempts-1, retry.NewExponential(pingBaseDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingErr := conn.PingContext(ctx)
		if pingErr == nil {
			return nil
		}
		log.Warn().Err(pingErr).Str("func", "NewConnectPostgres").Msg("database ping failed")
		if isConnectionError(pingErr) || classifier.Classify(pingErr) == Retryable {
			return retry.RetryableError(pingErr)
		}
		return pingErr
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
		migrate:            migrations.MigrateServer,
	}

	return db, nil
}

// isConnectionError reports a failure to reach the server at all, which
// pgx returns before any SQLSTATE is available.
func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
