package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/service"
	"github.com/MKhiriev/go-budget-vault/internal/workers"
	"github.com/MKhiriev/go-budget-vault/models"
)

var errNilServices = errors.New("client services are nil")

type App struct {
	services *service.ClientServices
	workers  *workers.Workers

	cfg              config.ClientApp
	remoteConfigured bool

	out    io.Writer
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNilServices
	}

	return &App{
		services: services,
		workers: workers.NewWorkers(
			services.Connectivity,
			workers.NewAutoSync(services.Sync, cfg.Workers.SyncInterval),
		),
		cfg:              cfg.App,
		remoteConfigured: cfg.RemoteConfigured(),
		out:              os.Stdout,
		logger:           logger,
	}, nil
}

// Run applies the configured settings, runs one cycle right away and then
// keeps syncing in the background until ctx is done. A sealed vault is
// opened with the configured password first and sealed again on the way out.
func (a *App) Run(ctx context.Context) error {
	if !a.remoteConfigured {
		return service.ErrRemoteNotConfigured
	}

	ctx = a.logger.WithContext(ctx)
	if err := a.applySettings(ctx); err != nil {
		return err
	}
	if err := a.openVault(ctx); err != nil {
		return err
	}

	a.services.Sync.OnStateChange(func(status models.SyncStatus) {
		a.logger.Info().
			Str("state", string(status.State)).
			Int("retry_count", status.RetryCount).
			Time("next_retry_at", status.NextRetryAt).
			Msg("sync state changed")
	})
	a.services.Sync.OnError(func(err error) {
		a.logger.Err(err).Str("user_message", service.UserMessage(err)).Msg("sync cycle failed")
	})

	a.workers.Start(ctx)
	defer a.workers.Stop()

	result := a.services.Sync.TriggerSync(ctx)
	a.logger.Info().
		Int("pushed", result.Pushed).
		Int("applied", result.Applied).
		Msg("initial sync finished")

	<-ctx.Done()
	a.logger.Info().Msg("sync client stopping")
	a.workers.Stop()
	a.sealVault(context.WithoutCancel(ctx))
	return nil
}

// openVault unlocks a sealed vault when a password is configured. Without
// one the client keeps running and sync stays paused until unlock.
func (a *App) openVault(ctx context.Context) error {
	status, err := a.services.Vault.Status(ctx)
	if err != nil {
		return err
	}
	if !status.Locked {
		return nil
	}
	if a.cfg.EncryptionPassword == "" {
		a.logger.Warn().Msg("vault is locked, sync is paused until it is unlocked")
		return nil
	}
	return a.services.Vault.Unlock(ctx, a.cfg.EncryptionPassword)
}

// sealVault locks an open encrypted vault so no plaintext stays on disk
// after exit.
func (a *App) sealVault(ctx context.Context) {
	status, err := a.services.Vault.Status(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.sealVault").Msg("failed to read vault status")
		return
	}
	if !status.Enabled || status.Locked {
		return
	}
	if err = a.lockVault(ctx); err != nil {
		a.logger.Err(err).Str("user_message", service.UserMessage(err)).Msg("failed to lock vault on exit")
	}
}

// applySettings persists the configured mode and plan, and hands the
// password to the sync engine. Empty values leave stored settings alone.
func (a *App) applySettings(ctx context.Context) error {
	caps := a.services.Capabilities

	if a.cfg.StorageMode != "" {
		mode, err := models.ParseStorageMode(a.cfg.StorageMode)
		if err != nil {
			return fmt.Errorf("%w: %w", service.ErrInvalidStorageMode, err)
		}
		if err = caps.SetStorageMode(ctx, mode); err != nil {
			return fmt.Errorf("set storage mode: %w", err)
		}
	}

	if a.cfg.ScopeID != "" {
		if err := caps.SetActiveScopeID(ctx, a.cfg.ScopeID); err != nil {
			return fmt.Errorf("set active scope: %w", err)
		}
	}

	if a.cfg.EncryptionPassword != "" {
		caps.SetPassword(a.cfg.EncryptionPassword)
	}

	return nil
}
