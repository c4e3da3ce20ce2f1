package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/models"
)

// Purposes of rows in the kv table.
const (
	PurposeSyncWatermark = "sync_watermark"
	PurposeSettings      = "settings"
)

type kvStore struct {
	*DB
	logger *logger.Logger
}

func (k *kvStore) get(ctx context.Context, purpose, key string) (string, bool, error) {
	var value string
	err := k.DB.QueryRowContext(ctx, getKV, purpose, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "kvStore.get").
			Str("purpose", purpose).
			Msg("failed to read kv row")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, true, nil
}

func (k *kvStore) exec(ctx context.Context, fn, query string, args ...any) error {
	if _, err := k.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to write kv row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type watermarkStore struct {
	kv kvStore
}

// NewWatermarkStore constructs the kv-backed [WatermarkStore].
func NewWatermarkStore(db *DB, logger *logger.Logger) WatermarkStore {
	return &watermarkStore{kv: kvStore{DB: db, logger: logger}}
}

func (w *watermarkStore) Get(ctx context.Context, purpose, scopeID string) (time.Time, bool, error) {
	raw, found, err := w.kv.get(ctx, purpose, scopeID)
	if err != nil || !found {
		return time.Time{}, false, err
	}

	ts, err := models.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("watermark %q: %w", raw, err)
	}
	return ts, true, nil
}

func (w *watermarkStore) Advance(ctx context.Context, purpose, scopeID string, ts time.Time) error {
	return w.kv.exec(ctx, "watermarkStore.Advance", advanceKV, purpose, scopeID, models.FormatTimestamp(ts))
}

type settingsStore struct {
	kv kvStore
}

// NewSettingsStore constructs the kv-backed [SettingsStore].
func NewSettingsStore(db *DB, logger *logger.Logger) SettingsStore {
	return &settingsStore{kv: kvStore{DB: db, logger: logger}}
}

func (s *settingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.kv.get(ctx, PurposeSettings, key)
}

func (s *settingsStore) Set(ctx context.Context, key, value string) error {
	return s.kv.exec(ctx, "settingsStore.Set", setKV, PurposeSettings, key, value)
}

func (s *settingsStore) Delete(ctx context.Context, key string) error {
	return s.kv.exec(ctx, "settingsStore.Delete", deleteKV, PurposeSettings, key)
}
