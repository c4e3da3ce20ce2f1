package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-budget-vault/internal/adapter"
	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/crypto"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/internal/utils"
)

var errNilStorages = errors.New("client storages are nil")

// ClientServices is the assembled client core: the vault, the sync engine and
// their collaborators, all over one local store.
type ClientServices struct {
	Encryption   crypto.EncryptionService
	Session      *crypto.VaultKeySession
	Capabilities *SettingsCapabilities
	Vault        VaultService
	Sync         SyncEngine
	Recorder     ChangeRecorder
	Mutations    EntityMutator
	Connectivity ConnectivityMonitor
}

// NewClientServices wires the client services. remote may be nil, in which
// case sync stays disabled and the connectivity monitor never probes.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteChangeLog, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	if storages == nil {
		return nil, errNilStorages
	}

	enc := crypto.NewEncryptionService(crypto.WithIterations(cfg.Vault.KDFIterations))
	session := crypto.NewVaultKeySession(enc, cfg.Vault.IdleTimeout, func(reason crypto.LockReason) {
		logger.Info().Str("func", "VaultKeySession.onLock").Str("reason", string(reason)).Msg("vault key cleared")
	})

	caps := NewSettingsCapabilities(storages.Settings)
	vault := NewVaultService(storages.Entities, storages.ChangeLog, storages.VaultMeta, session, enc, logger)

	engine := NewSyncEngine(
		storages.ChangeLog,
		storages.Entities,
		storages.Watermarks,
		remote,
		caps,
		enc,
		NewSyncEngineConfig(cfg.Workers),
		logger,
		WithSyncGuard(vaultSealed(vault)),
	)

	recorder := NewChangeRecorder(storages.ChangeLog, utils.NewUUIDGenerator(), engine.DebouncedSync, logger)
	mutations := NewEntityMutator(storages.Entities, storages.ChangeLog, caps, vault, recorder, logger)

	var pinger Pinger
	if remote != nil {
		pinger = remote
	}
	monitor := NewConnectivityMonitor(pinger, cfg.Workers.ProbeInterval, logger)
	monitor.Subscribe(engine.HandleConnectivity)

	return &ClientServices{
		Encryption:   enc,
		Session:      session,
		Capabilities: caps,
		Vault:        vault,
		Sync:         engine,
		Recorder:     recorder,
		Mutations:    mutations,
		Connectivity: monitor,
	}, nil
}

// vaultSealed skips sync while the local dataset is sealed: the entity
// tables are empty and must not be overwritten by a pull.
func vaultSealed(vault VaultService) func(ctx context.Context) bool {
	return func(ctx context.Context) bool {
		status, err := vault.Status(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "vaultSealed").Msg("failed to read vault status")
			return true
		}
		return status.Locked
	}
}

// Close stops background work and clears the in-memory key.
func (s *ClientServices) Close() {
	s.Connectivity.Stop()
	s.Sync.Dispose()
	s.Session.Clear()
	s.Capabilities.ClearPassword()
}
