package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/models"
)

type changeLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewChangeLogRepository constructs the SQLite-backed [ChangeLogRepository].
func NewChangeLogRepository(db *DB, logger *logger.Logger) ChangeLogRepository {
	return &changeLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *changeLogRepository) Append(ctx context.Context, entries ...models.ChangeLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "changeLogRepository.Append").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, entry := range entries {
		if err = appendEntry(ctx, tx, entry); err != nil {
			log.Err(err).
				Str("func", "changeLogRepository.Append").
				Int("iteration", idx+1).
				Str("entry_id", entry.ID).
				Msg("failed to append changelog entry")
			return fmt.Errorf("%w (id=%s): %w", ErrChangeLogNotSaved, entry.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "changeLogRepository.Append").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func appendEntry(ctx context.Context, db execer, entry models.ChangeLogEntry) error {
	var payload sql.NullString
	if entry.Payload != nil {
		payload = sql.NullString{String: string(entry.Payload), Valid: true}
	}

	_, err := db.ExecContext(ctx, appendChangeLogEntry,
		entry.ID,
		entry.ScopeID,
		string(entry.EntityType),
		entry.EntityID,
		string(entry.Operation),
		models.FormatTimestamp(entry.Timestamp),
		payload,
		entry.Name,
		entry.Synced,
	)
	return err
}

func (c *changeLogRepository) GetUnsynced(ctx context.Context, scopeID string) ([]models.ChangeLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(changeLogColumns).
		From("changelog").
		Where(sq.Eq{"scope_id": scopeID, "synced": false}).
		OrderBy("timestamp ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "changeLogRepository.GetUnsynced").
			Str("scope_id", scopeID).
			Msg("failed to query unsynced changelog entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanChangeLogRows(rows)
}

func (c *changeLogRepository) MarkSynced(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("changelog").
		Set("synced", true).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "changeLogRepository.MarkSynced").
			Int("count", len(ids)).
			Msg("failed to mark changelog entries as synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (c *changeLogRepository) GetLatestForEntity(ctx context.Context, scopeID string, entityType models.EntityType, entityID string) (models.ChangeLogEntry, bool, error) {
	row := c.DB.QueryRowContext(ctx, getLatestChangeLogEntry, scopeID, string(entityType), entityID)

	entry, err := scanChangeLogEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChangeLogEntry{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "changeLogRepository.GetLatestForEntity").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to read latest changelog entry")
		return models.ChangeLogEntry{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return entry, true, nil
}

func (c *changeLogRepository) PruneSynced(ctx context.Context, scopeID string, upTo time.Time) (int64, error) {
	query, args, err := sq.Delete("changelog").
		Where(sq.Eq{"scope_id": scopeID, "synced": true}).
		Where(sq.LtOrEq{"timestamp": models.FormatTimestamp(upTo)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "changeLogRepository.PruneSynced").
			Str("scope_id", scopeID).
			Msg("failed to prune changelog")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

func (c *changeLogRepository) GetAll(ctx context.Context) ([]models.ChangeLogEntry, error) {
	rows, err := c.DB.QueryContext(ctx, getAllChangeLogEntries)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "changeLogRepository.GetAll").Msg("failed to query changelog")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanChangeLogRows(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChangeLogEntry(row rowScanner) (models.ChangeLogEntry, error) {
	var (
		entry                        models.ChangeLogEntry
		entityType, operation, tsRaw string
		payload                      sql.NullString
	)

	if err := row.Scan(
		&entry.ID,
		&entry.ScopeID,
		&entityType,
		&entry.EntityID,
		&operation,
		&tsRaw,
		&payload,
		&entry.Name,
		&entry.Synced,
	); err != nil {
		return models.ChangeLogEntry{}, err
	}

	ts, err := models.ParseTimestamp(tsRaw)
	if err != nil {
		return models.ChangeLogEntry{}, fmt.Errorf("parse timestamp %q: %w", tsRaw, err)
	}
	entry.Timestamp = ts
	entry.EntityType = models.EntityType(entityType)
	entry.Operation = models.Operation(operation)
	if payload.Valid {
		entry.Payload = []byte(payload.String)
	}

	return entry, nil
}

func scanChangeLogRows(rows *sql.Rows) ([]models.ChangeLogEntry, error) {
	entries := make([]models.ChangeLogEntry, 0, 16)
	for rows.Next() {
		entry, err := scanChangeLogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return entries, nil
}
