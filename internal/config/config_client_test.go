package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultClientDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultDebounceDelay, cfg.Workers.DebounceDelay)
	assert.Equal(t, DefaultRetryBaseDelay, cfg.Workers.RetryBaseDelay)
	assert.Equal(t, DefaultRetryMaxDelay, cfg.Workers.RetryMaxDelay)
	assert.Equal(t, DefaultMaxAttempts, cfg.Workers.MaxAttempts)
	assert.Equal(t, DefaultIdleTimeout, cfg.Vault.IdleTimeout)
	assert.Zero(t, cfg.Workers.ProbeInterval)
	assert.False(t, cfg.RemoteConfigured())
	assert.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{AccessToken: "tok", Version: "2.0.0", StorageMode: "cloud", ScopeID: "plan-1", EncryptionPassword: "pw"},
		Adapter: Adapter{HTTPAddress: "http://remote", RequestTimeout: time.Second},
		Storage: Storage{DB: DB{DSN: ":memory:"}},
		Workers: Workers{MaxAttempts: 2, RetryBaseDelay: 100 * time.Millisecond},
		Vault:   Vault{IdleTimeout: time.Minute, KDFIterations: 1000},
		Command: []string{"lock"},
	})

	assert.Equal(t, "tok", cfg.App.AccessToken)
	assert.Equal(t, "cloud", cfg.App.StorageMode)
	assert.Equal(t, "plan-1", cfg.App.ScopeID)
	assert.Equal(t, "pw", cfg.App.EncryptionPassword)
	assert.Equal(t, "http://remote", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 2, cfg.Workers.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.Workers.RetryBaseDelay)
	assert.Equal(t, time.Minute, cfg.Vault.IdleTimeout)
	assert.Equal(t, 1000, cfg.Vault.KDFIterations)
	assert.Equal(t, []string{"lock"}, cfg.Command)
	assert.True(t, cfg.RemoteConfigured())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{
			name:    "empty dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "max below base",
			mutate:  func(c *ClientConfig) { c.Workers.RetryMaxDelay = time.Millisecond },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero attempts",
			mutate:  func(c *ClientConfig) { c.Workers.MaxAttempts = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero idle timeout",
			mutate:  func(c *ClientConfig) { c.Vault.IdleTimeout = 0 },
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "unknown storage mode",
			mutate:  func(c *ClientConfig) { c.App.StorageMode = "sometimes" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newClientConfig(&StructuredConfig{})
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig_DefaultsAndValidation(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{})

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultServerTimeout, cfg.Server.RequestTimeout)
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost/db"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg.App.TokenSignKey = "secret"
	assert.NoError(t, cfg.validate())
}
