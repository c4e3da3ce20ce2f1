package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

// Settings keys read by [SettingsCapabilities].
const (
	SettingStorageMode   = "storage_mode"
	SettingActiveScopeID = "active_scope_id"
)

// SettingsCapabilities implements [Capabilities] over the settings store.
// The password is never persisted; it lives in memory for as long as the
// application session keeps it.
type SettingsCapabilities struct {
	settings store.SettingsStore

	mu       sync.RWMutex
	password string
}

func NewSettingsCapabilities(settings store.SettingsStore) *SettingsCapabilities {
	return &SettingsCapabilities{settings: settings}
}

func (c *SettingsCapabilities) StorageMode(ctx context.Context) (models.StorageMode, error) {
	raw, _, err := c.settings.Get(ctx, SettingStorageMode)
	if err != nil {
		return "", fmt.Errorf("read storage mode: %w", err)
	}
	mode, err := models.ParseStorageMode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidStorageMode, err)
	}
	return mode, nil
}

func (c *SettingsCapabilities) ActiveScopeID(ctx context.Context) (string, error) {
	scopeID, _, err := c.settings.Get(ctx, SettingActiveScopeID)
	if err != nil {
		return "", fmt.Errorf("read active scope: %w", err)
	}
	return scopeID, nil
}

func (c *SettingsCapabilities) EncryptionPassword(context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.password, nil
}

func (c *SettingsCapabilities) SetStorageMode(ctx context.Context, mode models.StorageMode) error {
	if _, err := models.ParseStorageMode(string(mode)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageMode, err)
	}
	return c.settings.Set(ctx, SettingStorageMode, string(mode))
}

// SetActiveScopeID stores the open plan; an empty id clears it.
func (c *SettingsCapabilities) SetActiveScopeID(ctx context.Context, scopeID string) error {
	if scopeID == "" {
		return c.settings.Delete(ctx, SettingActiveScopeID)
	}
	return c.settings.Set(ctx, SettingActiveScopeID, scopeID)
}

func (c *SettingsCapabilities) SetPassword(password string) {
	c.mu.Lock()
	c.password = password
	c.mu.Unlock()
}

func (c *SettingsCapabilities) ClearPassword() {
	c.SetPassword("")
}
