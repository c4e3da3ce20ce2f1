package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-budget-vault/models"
)

// Client commands.
const (
	CommandRun               = "run"
	CommandStatus            = "status"
	CommandEnableEncryption  = "enable-encryption"
	CommandDisableEncryption = "disable-encryption"
	CommandLock              = "lock"
	CommandUnlock            = "unlock"
	CommandExport            = "export"
	CommandImport            = "import"
	CommandPut               = "put"
	CommandDelete            = "delete"
)

// Usage lists the commands accepted by Execute.
const Usage = `commands:
  run                               sync until stopped (default)
  status                            print vault and sync status
  enable-encryption                 encrypt the local vault with the password
  disable-encryption                decrypt the local vault for good
  lock                              seal the local vault
  unlock                            restore a sealed vault
  export <file>                     write a password-sealed backup
  import <file>                     restore a backup
  put <entity-type> <json> [name]   create or update one entity
  delete <entity-type> <id> [name]  delete one entity

The password is read from APP_ENCRYPTION_PASSWORD.`

// ErrUsage marks a command line that names an unknown command or misses an
// argument.
var ErrUsage = errors.New("invalid command line")

// Execute runs one client command. An empty args runs the sync loop.
func (a *App) Execute(ctx context.Context, args []string) error {
	name := CommandRun
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	if name == CommandRun {
		return a.Run(ctx)
	}

	ctx = a.logger.WithContext(ctx)
	if err := a.applySettings(ctx); err != nil {
		return err
	}

	vault := a.services.Vault
	password := a.cfg.EncryptionPassword

	switch name {
	case CommandStatus:
		return a.printStatus(ctx)
	case CommandEnableEncryption:
		return vault.EnableEncryption(ctx, password)
	case CommandDisableEncryption:
		return vault.DisableEncryption(ctx, password)
	case CommandLock:
		return a.lockVault(ctx)
	case CommandUnlock:
		return vault.Unlock(ctx, password)
	case CommandExport:
		path, err := argument(args, 0, "file")
		if err != nil {
			return err
		}
		backup, err := vault.Export(ctx, password)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(backup), 0o600)
	case CommandImport:
		path, err := argument(args, 0, "file")
		if err != nil {
			return err
		}
		backup, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		return vault.Import(ctx, string(backup), password)
	case CommandPut:
		entityType, err := entityTypeArgument(args)
		if err != nil {
			return err
		}
		payload, err := argument(args, 1, "json")
		if err != nil {
			return err
		}
		id, err := a.services.Mutations.Put(ctx, entityType, json.RawMessage(payload), optional(args, 2))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, id)
		return err
	case CommandDelete:
		entityType, err := entityTypeArgument(args)
		if err != nil {
			return err
		}
		id, err := argument(args, 1, "id")
		if err != nil {
			return err
		}
		return a.services.Mutations.Delete(ctx, entityType, id, optional(args, 2))
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}
}

// SetHidden reports the host window state to the key session. Hiding the
// app clears the vault key; showing it again counts as activity.
func (a *App) SetHidden(hidden bool) {
	a.services.Session.NotifyVisibility(hidden)
	if !hidden {
		a.services.Session.NotifyActivity()
	}
	a.logger.Debug().Bool("hidden", hidden).Msg("visibility changed")
}

// lockVault seals the dataset. A key dropped by the idle timer is derived
// again from the configured password first.
func (a *App) lockVault(ctx context.Context) error {
	status, err := a.services.Vault.Status(ctx)
	if err != nil {
		return err
	}
	if status.Enabled && !status.Locked && !status.SessionActive {
		if err = a.services.Vault.Unlock(ctx, a.cfg.EncryptionPassword); err != nil {
			return err
		}
	}
	return a.services.Vault.Lock(ctx)
}

type statusReport struct {
	Vault models.VaultStatus `json:"vault"`
	Sync  models.SyncStatus  `json:"sync"`
	Mode  models.StorageMode `json:"mode"`
	Scope string             `json:"scope"`
}

func (a *App) printStatus(ctx context.Context) error {
	vault, err := a.services.Vault.Status(ctx)
	if err != nil {
		return err
	}
	mode, err := a.services.Capabilities.StorageMode(ctx)
	if err != nil {
		return err
	}
	scope, err := a.services.Capabilities.ActiveScopeID(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(statusReport{
		Vault: vault,
		Sync:  a.services.Sync.Status(),
		Mode:  mode,
		Scope: scope,
	})
}

func argument(args []string, i int, name string) (string, error) {
	if i >= len(args) || args[i] == "" {
		return "", fmt.Errorf("%w: missing %s", ErrUsage, name)
	}
	return args[i], nil
}

func optional(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}

func entityTypeArgument(args []string) (models.EntityType, error) {
	raw, err := argument(args, 0, "entity type")
	if err != nil {
		return "", err
	}
	entityType, err := models.ParseEntityType(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return entityType, nil
}
