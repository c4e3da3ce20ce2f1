package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
)

// Storages groups the server-side repositories over one PostgreSQL pool.
type Storages struct {
	DB        *DB
	ChangeLog RemoteChangeLogRepository
}

// NewStorages connects to PostgreSQL, applies the server migrations and
// builds every repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DB:        db,
		ChangeLog: NewRemoteChangeLogRepository(db, logger),
	}, nil
}

func (s *Storages) Close() error {
	return s.DB.Close()
}
