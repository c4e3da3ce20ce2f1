package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/models"
)

// remoteChangeLogRepository is the PostgreSQL-backed implementation of
// [RemoteChangeLogRepository]. Every row carries the owner id taken from the
// caller's token, and reads never cross owners.
type remoteChangeLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteChangeLogRepository constructs a [RemoteChangeLogRepository]
// backed by the provided database connection and logger.
func NewRemoteChangeLogRepository(db *DB, logger *logger.Logger) RemoteChangeLogRepository {
	logger.Debug().Msg("creating remote changelog repository")
	return &remoteChangeLogRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert writes the batch inside one transaction through a prepared
// statement. An id already owned by a different owner is left untouched.
func (r *remoteChangeLogRepository) Upsert(ctx context.Context, ownerID string, entries []models.RemoteChangeLogEntry) error {
	if ownerID == "" {
		return ErrEmptyOwner
	}
	if len(entries) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "remoteChangeLogRepository.Upsert").Msg("failed to begin transaction")
		return r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertRemoteChangeLogEntry)
	if err != nil {
		log.Err(err).Str("func", "remoteChangeLogRepository.Upsert").Msg("failed to prepare upsert statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, entry := range entries {
		var payload sql.NullString
		if entry.Payload != nil {
			payload = sql.NullString{String: *entry.Payload, Valid: true}
		}

		_, err = stmt.ExecContext(ctx,
			entry.ID,
			ownerID,
			entry.ScopeID,
			entry.EntityType,
			entry.EntityID,
			entry.Operation,
			entry.Timestamp.UTC(),
			payload,
			entry.IsEncrypted,
		)
		if err != nil {
			log.Err(err).
				Str("func", "remoteChangeLogRepository.Upsert").
				Int("iteration", idx+1).
				Str("entry_id", entry.ID).
				Msg("failed to upsert changelog entry")

			if postgresError(err) == pgerrcode.CheckViolation {
				return fmt.Errorf("%w (id=%s): %w", ErrInvalidEntityPayload, entry.ID, err)
			}
			return r.wrap(ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "remoteChangeLogRepository.Upsert").Msg("failed to commit transaction")
		return r.wrap(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "remoteChangeLogRepository.Upsert").
		Int("count", len(entries)).
		Msg("changelog entries upserted")
	return nil
}

func (r *remoteChangeLogRepository) GetSince(ctx context.Context, request models.ChangeLogPullRequest) ([]models.RemoteChangeLogEntry, error) {
	if request.OwnerID == "" {
		return nil, ErrEmptyOwner
	}
	log := logger.FromContext(ctx)

	query, args, err := buildGetSinceQuery(request)
	if err != nil {
		log.Err(err).Str("func", "remoteChangeLogRepository.GetSince").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "remoteChangeLogRepository.GetSince").
			Str("scope_id", request.ScopeID).
			Msg("failed to execute pull query")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.RemoteChangeLogEntry, 0, 50)
	for rows.Next() {
		var (
			entry   models.RemoteChangeLogEntry
			payload sql.NullString
		)
		scanErr := rows.Scan(
			&entry.ID,
			&entry.ScopeID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Operation,
			&entry.Timestamp,
			&payload,
			&entry.IsEncrypted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "remoteChangeLogRepository.GetSince").
				Str("scope_id", request.ScopeID).
				Msg("failed to scan changelog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if payload.Valid {
			p := payload.String
			entry.Payload = &p
		}
		entry.Timestamp = entry.Timestamp.UTC()
		results = append(results, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "remoteChangeLogRepository.GetSince").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// wrap tags err with kind, and with [ErrTransient] when the classifier says
// the call may succeed on retry.
func (r *remoteChangeLogRepository) wrap(kind, err error) error {
	if r.DB.Retryable(err) {
		return fmt.Errorf("%w: %w: %w", kind, ErrTransient, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func (r *remoteChangeLogRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// buildGetSinceQuery selects one owner's scope after the watermark. A zero
// Since returns the whole scope.
func buildGetSinceQuery(request models.ChangeLogPullRequest) (string, []any, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(remoteChangeLogColumns).
		From("changelog").
		Where(sq.Eq{"owner_id": request.OwnerID, "scope_id": request.ScopeID})

	if !request.Since.IsZero() {
		builder = builder.Where(sq.Gt{"timestamp": request.Since.UTC()})
	}

	return builder.OrderBy("timestamp ASC", "id ASC").ToSql()
}
