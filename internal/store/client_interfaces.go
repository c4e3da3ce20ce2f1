package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-budget-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ChangeLogRepository is the local append-only log of entity mutations.
type ChangeLogRepository interface {
	// Append writes new entries. Entries are never rewritten afterwards;
	// re-appending an existing id is ignored.
	Append(ctx context.Context, entries ...models.ChangeLogEntry) error

	// GetUnsynced returns entries of scopeID not yet pushed, oldest first.
	GetUnsynced(ctx context.Context, scopeID string) ([]models.ChangeLogEntry, error)

	// MarkSynced flags the given entries as pushed.
	MarkSynced(ctx context.Context, ids ...string) error

	// GetLatestForEntity returns the newest entry for one entity. found is
	// false when the entity has no local history.
	GetLatestForEntity(ctx context.Context, scopeID string, entityType models.EntityType, entityID string) (entry models.ChangeLogEntry, found bool, err error)

	// PruneSynced removes pushed entries of scopeID with timestamp <= upTo
	// and returns how many were removed.
	PruneSynced(ctx context.Context, scopeID string, upTo time.Time) (int64, error)

	// GetAll returns the whole log ordered by timestamp.
	GetAll(ctx context.Context) ([]models.ChangeLogEntry, error)
}

// EntityOp is one accepted mutation to apply to the local store.
type EntityOp struct {
	EntityType models.EntityType
	EntityID   string
	Delete     bool
	// Payload is the entity JSON; ignored for deletes.
	Payload json.RawMessage
}

// Snapshot is every collection of the local store at one instant.
type Snapshot struct {
	Entities    map[models.EntityType][]models.Entity
	Attachments []models.Attachment
	ChangeLog   []models.ChangeLogEntry
}

// EntityStore is the narrow read/write contract the sync and vault core
// needs from the local entity tables.
type EntityStore interface {
	// Put upserts one entity decoded from its JSON payload.
	Put(ctx context.Context, entityType models.EntityType, payload json.RawMessage) error

	// Delete removes one entity; deleting a missing id is not an error.
	Delete(ctx context.Context, entityType models.EntityType, id string) error

	// Apply runs every op inside one transaction: all are visible or none.
	Apply(ctx context.Context, ops []EntityOp) error

	// GetAll reads one generic collection. Attachments use GetAllAttachments.
	GetAll(ctx context.Context, entityType models.EntityType) ([]models.Entity, error)

	// GetAllAttachments reads every attachment with its blob.
	GetAllAttachments(ctx context.Context) ([]models.Attachment, error)

	// ReplaceAll clears every entity table and the changelog, then writes
	// snapshot, in one transaction. Vault metadata and key/value state are kept.
	ReplaceAll(ctx context.Context, snapshot Snapshot) error

	// Clear empties every entity table and the changelog in one transaction.
	Clear(ctx context.Context) error

	// Seal snapshots every collection, passes the snapshot to seal, then
	// saves the returned vault metadata and clears the collections, all in
	// one transaction. Nothing is changed when seal fails.
	Seal(ctx context.Context, seal func(Snapshot) (models.VaultMeta, error)) error
}

// WatermarkStore keeps one timestamp per (purpose, scope).
type WatermarkStore interface {
	// Get returns the stored watermark; found is false when none was stored yet.
	Get(ctx context.Context, purpose, scopeID string) (watermark time.Time, found bool, err error)

	// Advance stores ts only if it is later than the stored value, so the
	// watermark never moves backwards.
	Advance(ctx context.Context, purpose, scopeID string, ts time.Time) error
}

// SettingsStore is a flat string key/value store for client preferences.
type SettingsStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// VaultMetaRepository persists the vault-key metadata row.
type VaultMetaRepository interface {
	Get(ctx context.Context) (models.VaultMeta, error)
	Save(ctx context.Context, meta models.VaultMeta) error
	Clear(ctx context.Context) error
}
