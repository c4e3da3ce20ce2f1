package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-budget-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// Capabilities are the three facts the sync engine needs from the rest of
// the application each cycle.
type Capabilities interface {
	// StorageMode reports where data lives. Local-only disables sync.
	StorageMode(ctx context.Context) (models.StorageMode, error)

	// ActiveScopeID returns the plan currently open, or "" when none is.
	ActiveScopeID(ctx context.Context) (string, error)

	// EncryptionPassword returns the password used to seal pushed payloads
	// in cloud-encrypted mode, or "" when the user has not provided it.
	EncryptionPassword(ctx context.Context) (string, error)
}

// VaultService snapshots the whole local store and seals it with a
// password-derived key. Errors are returned to the caller because they need
// caller-level handling such as a password prompt.
type VaultService interface {
	// BuildVaultPayload reads every collection into one version 1 payload.
	BuildVaultPayload(ctx context.Context) (models.VaultPayload, error)

	// RestoreVaultPayload atomically replaces every collection with payload.
	// Returns ErrVaultUpgradeRequired unless the version matches exactly.
	RestoreVaultPayload(ctx context.Context, payload models.VaultPayload) error

	// EncryptVaultPayload returns the serialized EncryptedPayload of payload.
	// An empty password seals with the active session key.
	EncryptVaultPayload(ctx context.Context, payload models.VaultPayload, password string) (string, error)

	// DecryptVaultPayload opens and validates a serialized EncryptedPayload.
	// An empty password opens with the active session key.
	DecryptVaultPayload(ctx context.Context, ciphertext, password string) (models.VaultPayload, error)

	EnableEncryption(ctx context.Context, password string) error
	Lock(ctx context.Context) error
	Unlock(ctx context.Context, password string) error
	DisableEncryption(ctx context.Context, password string) error

	// Export produces a portable backup sealed with password.
	Export(ctx context.Context, password string) (string, error)

	// Import restores a backup produced by Export.
	Import(ctx context.Context, data, password string) error

	Status(ctx context.Context) (models.VaultStatus, error)
}

// SyncEngine reconciles the local changelog with the remote changelog table.
// Failures are reported through OnError and Status, never returned.
type SyncEngine interface {
	// TriggerSync runs one push/pull cycle. It is a no-op while a cycle is
	// already running, when the remote is unconfigured, or while offline.
	TriggerSync(ctx context.Context) models.SyncResult

	// Retry resets the retry counter and triggers a cycle. It is the way out
	// of the error state.
	Retry(ctx context.Context) models.SyncResult

	// EnableAutoSync triggers a cycle every interval until DisableAutoSync.
	EnableAutoSync(ctx context.Context, interval time.Duration)
	DisableAutoSync()

	// DebouncedSync coalesces bursts of calls into one cycle after a quiet
	// period.
	DebouncedSync(ctx context.Context)

	// HandleConnectivity moves the engine to offline, or back to idle with an
	// immediate cycle.
	HandleConnectivity(ctx context.Context, online bool)

	Status() models.SyncStatus
	OnStateChange(fn func(models.SyncStatus))
	OnError(fn func(error))

	// Dispose stops every timer. A cycle already running is not aborted.
	Dispose()
}

// ChangeRecorder is called by the domain layer after every successful local
// mutation. Failures are logged, never returned.
type ChangeRecorder interface {
	RecordChange(ctx context.Context, scopeID string, entityType models.EntityType, entityID string, operation models.Operation, payload any, name string)
}

// EntityMutator is the local write path of the domain layer: it changes one
// entity of the active plan and records the change for sync.
type EntityMutator interface {
	// Put upserts the entity JSON and returns its id.
	Put(ctx context.Context, entityType models.EntityType, payload json.RawMessage, name string) (string, error)
	Delete(ctx context.Context, entityType models.EntityType, entityID, name string) error
}

// ConnectivityMonitor tracks whether the remote is reachable and tells its
// subscribers about transitions.
type ConnectivityMonitor interface {
	// Start launches the health-probe loop; a non-positive probe interval
	// leaves the monitor driven by SetOnline only.
	Start(ctx context.Context)
	Stop()

	// SetOnline records a signal from the host (for example an OS network
	// event) and notifies subscribers when the state changes.
	SetOnline(ctx context.Context, online bool)

	Online() bool
	Subscribe(fn func(ctx context.Context, online bool))
}
