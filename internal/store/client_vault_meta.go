package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/models"
)

type vaultMetaRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultMetaRepository constructs the SQLite-backed [VaultMetaRepository].
func NewVaultMetaRepository(db *DB, logger *logger.Logger) VaultMetaRepository {
	return &vaultMetaRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the stored metadata, or a zero (disabled) value when the vault
// was never enabled.
func (v *vaultMetaRepository) Get(ctx context.Context) (models.VaultMeta, error) {
	var (
		meta models.VaultMeta
		ts   string
	)

	err := v.DB.QueryRowContext(ctx, getVaultMeta).Scan(&meta.Enabled, &meta.Salt, &meta.Sealed, &meta.Verifier, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultMeta{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultMetaRepository.Get").Msg("failed to read vault meta")
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if meta.UpdatedAt, err = models.ParseTimestamp(ts); err != nil {
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return meta, nil
}

func (v *vaultMetaRepository) Save(ctx context.Context, meta models.VaultMeta) error {
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = models.Now()
	}

	_, err := v.DB.ExecContext(ctx, saveVaultMeta,
		meta.Enabled,
		meta.Salt,
		meta.Sealed,
		meta.Verifier,
		models.FormatTimestamp(meta.UpdatedAt),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultMetaRepository.Save").Msg("failed to save vault meta")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (v *vaultMetaRepository) Clear(ctx context.Context) error {
	if _, err := v.DB.ExecContext(ctx, clearVaultMeta); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultMetaRepository.Clear").Msg("failed to clear vault meta")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
