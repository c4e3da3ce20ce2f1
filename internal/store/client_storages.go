package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
)

// ClientStorages groups all client-side repositories over one SQLite
// database into a single value that can be passed around the service layer.
type ClientStorages struct {
	// DB is the shared connection; Close releases it.
	DB *DB

	// ChangeLog is the append-only log of local mutations.
	ChangeLog ChangeLogRepository

	// Entities reads and writes the per-kind entity tables.
	Entities EntityStore

	// Watermarks holds the per-scope pull cursors.
	Watermarks WatermarkStore

	// Settings holds client preferences such as the storage mode and the
	// active scope.
	Settings SettingsStore

	// VaultMeta holds the vault-key metadata row.
	VaultMeta VaultMetaRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs every repository over the shared connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		DB:         db,
		ChangeLog:  NewChangeLogRepository(db, logger),
		Entities:   NewEntityStore(db, logger),
		Watermarks: NewWatermarkStore(db, logger),
		Settings:   NewSettingsStore(db, logger),
		VaultMeta:  NewVaultMetaRepository(db, logger),
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
