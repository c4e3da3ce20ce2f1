// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/models"
)

// entityTable is the typed handle of one local table. Every [models.EntityType]
// resolves to exactly one implementation through tableFor.
type entityTable interface {
	upsert(ctx context.Context, db execer, payload json.RawMessage) error
	delete(ctx context.Context, db execer, id string) error
	clear(ctx context.Context, db execer) error
}

// documentTable stores a generic [models.Entity].
type documentTable struct {
	name string
}

// attachmentTable stores [models.Attachment] rows with their blobs.
type attachmentTable struct{}

var documentTables = map[models.EntityType]documentTable{
	models.EntityPlan:              {name: "plans"},
	models.EntityBucket:            {name: "buckets"},
	models.EntityTaxComponent:      {name: "tax_components"},
	models.EntityExpense:           {name: "expenses"},
	models.EntityGoal:              {name: "goals"},
	models.EntityAsset:             {name: "assets"},
	models.EntityLiability:         {name: "liabilities"},
	models.EntitySnapshot:          {name: "snapshots"},
	models.EntityNetWorthSnapshot:  {name: "net_worth_snapshots"},
	models.EntityRecurringTemplate: {name: "recurring_templates"},
	models.EntityExchangeRate:      {name: "exchange_rates"},
}

func tableFor(entityType models.EntityType) (entityTable, error) {
	if entityType == models.EntityAttachment {
		return attachmentTable{}, nil
	}
	if t, ok := documentTables[entityType]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
}

func (t documentTable) upsert(ctx context.Context, db execer, payload json.RawMessage) error {
	var entity models.Entity
	if err := json.Unmarshal(payload, &entity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntityPayload, err)
	}
	return t.put(ctx, db, entity)
}

func (t documentTable) put(ctx context.Context, db execer, entity models.Entity) error {
	if entity.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEntityPayload)
	}
	data := string(entity.Data)
	if data == "" {
		data = "{}"
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf(upsertDocument, t.name),
		entity.ID,
		entity.PlanID,
		data,
		models.FormatTimestamp(entity.UpdatedAt),
	)
	return err
}

func (t documentTable) delete(ctx context.Context, db execer, id string) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(deleteDocument, t.name), id)
	return err
}

func (t documentTable) clear(ctx context.Context, db execer) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(clearTable, t.name))
	return err
}

func (t documentTable) getAll(ctx context.Context, db execer) ([]models.Entity, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(getAllDocuments, t.name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.Entity, 0, 16)
	for rows.Next() {
		var (
			entity   models.Entity
			data, ts string
		)
		if err = rows.Scan(&entity.ID, &entity.PlanID, &data, &ts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if entity.UpdatedAt, err = models.ParseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entity.Data = json.RawMessage(data)
		entities = append(entities, entity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return entities, nil
}

func (attachmentTable) upsert(ctx context.Context, db execer, payload json.RawMessage) error {
	var attachment models.Attachment
	if err := json.Unmarshal(payload, &attachment); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntityPayload, err)
	}
	return attachmentTable{}.put(ctx, db, attachment)
}

func (attachmentTable) put(ctx context.Context, db execer, a models.Attachment) error {
	if a.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEntityPayload)
	}
	blob := a.Blob
	if blob == nil {
		blob = []byte{}
	}
	_, err := db.ExecContext(ctx, upsertAttachment,
		a.ID,
		a.PlanID,
		a.ExpenseID,
		a.Name,
		a.MimeType,
		a.Size,
		blob,
		models.FormatTimestamp(a.CreatedAt),
	)
	return err
}

func (attachmentTable) delete(ctx context.Context, db execer, id string) error {
	_, err := db.ExecContext(ctx, deleteAttachment, id)
	return err
}

func (attachmentTable) clear(ctx context.Context, db execer) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(clearTable, "attachments"))
	return err
}

func (attachmentTable) getAll(ctx context.Context, db execer) ([]models.Attachment, error) {
	rows, err := db.QueryContext(ctx, getAllAttachments)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	attachments := make([]models.Attachment, 0, 8)
	for rows.Next() {
		var (
			a  models.Attachment
			ts string
		)
		if err = rows.Scan(&a.ID, &a.PlanID, &a.ExpenseID, &a.Name, &a.MimeType, &a.Size, &a.Blob, &ts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if a.CreatedAt, err = models.ParseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		attachments = append(attachments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return attachments, nil
}

type entityStore struct {
	*DB
	logger *logger.Logger
}

// NewEntityStore constructs the SQLite-backed [EntityStore].
func NewEntityStore(db *DB, logger *logger.Logger) EntityStore {
	return &entityStore{
		DB:     db,
		logger: logger,
	}
}

func (e *entityStore) Put(ctx context.Context, entityType models.EntityType, payload json.RawMessage) error {
	table, err := tableFor(entityType)
	if err != nil {
		return err
	}
	if err = table.upsert(ctx, e.DB, payload); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityStore.Put").
			Str("entity_type", string(entityType)).
			Msg("failed to upsert entity")
		return fmt.Errorf("put %s: %w", entityType, err)
	}
	return nil
}

func (e *entityStore) Delete(ctx context.Context, entityType models.EntityType, id string) error {
	table, err := tableFor(entityType)
	if err != nil {
		return err
	}
	if err = table.delete(ctx, e.DB, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityStore.Delete").
			Str("entity_type", string(entityType)).
			Str("entity_id", id).
			Msg("failed to delete entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (e *entityStore) Apply(ctx context.Context, ops []EntityOp) error {
	if len(ops) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return e.inTx(ctx, "entityStore.Apply", func(tx *sql.Tx) error {
		for idx, op := range ops {
			table, err := tableFor(op.EntityType)
			if err != nil {
				return err
			}

			if op.Delete {
				err = table.delete(ctx, tx, op.EntityID)
			} else {
				err = table.upsert(ctx, tx, op.Payload)
			}
			if err != nil {
				log.Err(err).
					Str("func", "entityStore.Apply").
					Int("iteration", idx+1).
					Str("entity_type", string(op.EntityType)).
					Str("entity_id", op.EntityID).
					Msg("failed to apply entity op")
				return fmt.Errorf("apply %s %s: %w", op.EntityType, op.EntityID, err)
			}
		}
		return nil
	})
}

func (e *entityStore) GetAll(ctx context.Context, entityType models.EntityType) ([]models.Entity, error) {
	table, ok := documentTables[entityType]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a document collection", ErrUnknownEntityType, entityType)
	}
	return table.getAll(ctx, e.DB)
}

func (e *entityStore) GetAllAttachments(ctx context.Context) ([]models.Attachment, error) {
	return attachmentTable{}.getAll(ctx, e.DB)
}

func (e *entityStore) ReplaceAll(ctx context.Context, snapshot Snapshot) error {
	return e.inTx(ctx, "entityStore.ReplaceAll", func(tx *sql.Tx) error {
		if err := clearAll(ctx, tx); err != nil {
			return err
		}

		for entityType, entities := range snapshot.Entities {
			table, ok := documentTables[entityType]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
			}
			for _, entity := range entities {
				if err := table.put(ctx, tx, entity); err != nil {
					return fmt.Errorf("restore %s %s: %w", entityType, entity.ID, err)
				}
			}
		}

		for _, a := range snapshot.Attachments {
			if err := (attachmentTable{}).put(ctx, tx, a); err != nil {
				return fmt.Errorf("restore attachment %s: %w", a.ID, err)
			}
		}

		for _, entry := range snapshot.ChangeLog {
			if err := appendEntry(ctx, tx, entry); err != nil {
				return fmt.Errorf("restore changelog %s: %w", entry.ID, err)
			}
		}
		return nil
	})
}

// Seal reads a snapshot, hands it to seal and, in the same transaction,
// saves the returned vault metadata and empties every collection. The store
// keeps a single connection, so no write can land between the read and the
// clear.
func (e *entityStore) Seal(ctx context.Context, seal func(Snapshot) (models.VaultMeta, error)) error {
	return e.inTx(ctx, "entityStore.Seal", func(tx *sql.Tx) error {
		snapshot, err := readSnapshot(ctx, tx)
		if err != nil {
			return err
		}

		meta, err := seal(snapshot)
		if err != nil {
			return err
		}
		if meta.UpdatedAt.IsZero() {
			meta.UpdatedAt = models.Now()
		}
		if _, err = tx.ExecContext(ctx, saveVaultMeta,
			meta.Enabled,
			meta.Salt,
			meta.Sealed,
			meta.Verifier,
			models.FormatTimestamp(meta.UpdatedAt),
		); err != nil {
			return fmt.Errorf("%w: save vault meta: %w", ErrExecutingStatement, err)
		}

		return clearAll(ctx, tx)
	})
}

func readSnapshot(ctx context.Context, tx execer) (Snapshot, error) {
	snapshot := Snapshot{Entities: make(map[models.EntityType][]models.Entity, len(documentTables))}

	for entityType, table := range documentTables {
		entities, err := table.getAll(ctx, tx)
		if err != nil {
			return Snapshot{}, fmt.Errorf("read %s: %w", entityType, err)
		}
		snapshot.Entities[entityType] = entities
	}

	attachments, err := attachmentTable{}.getAll(ctx, tx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read attachments: %w", err)
	}
	snapshot.Attachments = attachments

	rows, err := tx.QueryContext(ctx, getAllChangeLogEntries)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()
	if snapshot.ChangeLog, err = scanChangeLogRows(rows); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

func (e *entityStore) Clear(ctx context.Context) error {
	return e.inTx(ctx, "entityStore.Clear", func(tx *sql.Tx) error {
		return clearAll(ctx, tx)
	})
}

func clearAll(ctx context.Context, tx execer) error {
	for _, entityType := range models.EntityTypes {
		table, err := tableFor(entityType)
		if err != nil {
			return err
		}
		if err = table.clear(ctx, tx); err != nil {
			return fmt.Errorf("clear %s: %w", entityType, err)
		}
	}
	if _, err := tx.ExecContext(ctx, clearChangeLog); err != nil {
		return fmt.Errorf("clear changelog: %w", err)
	}
	return nil
}

func (e *entityStore) inTx(ctx context.Context, fn string, body func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = body(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
