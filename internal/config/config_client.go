package config

import (
	"fmt"
	"time"
)

// Client defaults applied to zero-valued fields of the merged config.
const (
	DefaultClientDSN      = "budget-vault.db"
	DefaultRequestTimeout = 10 * time.Second
	DefaultSyncInterval   = 30 * time.Second
	DefaultDebounceDelay  = 2 * time.Second
	DefaultRetryBaseDelay = time.Second
	DefaultRetryMaxDelay  = 5 * time.Minute
	DefaultMaxAttempts    = 5
	DefaultIdleTimeout    = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// AccessToken is the bearer token sent to the remote changelog.
	AccessToken string
	// Version is reported in logs.
	Version string
	// StorageMode and ScopeID, when non-empty, are persisted on start.
	StorageMode string
	ScopeID     string
	// EncryptionPassword is handed to the sync engine for cloud-encrypted mode.
	EncryptionPassword string
	LogPath            string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote changelog base URL. Empty disables sync.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path. ":memory:" opens a throwaway database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the sync engine timings.
type ClientWorkers struct {
	SyncInterval   time.Duration
	DebounceDelay  time.Duration
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	MaxAttempts    int
	ProbeInterval  time.Duration
}

// ClientVault contains key-session settings.
type ClientVault struct {
	IdleTimeout   time.Duration
	KDFIterations int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains sync engine settings.
	Workers ClientWorkers
	// Vault contains key-session settings.
	Vault ClientVault
	// Command is the client command with its arguments. Empty means run.
	Command []string
}

// RemoteConfigured reports whether a remote changelog endpoint is set.
func (c *ClientConfig) RemoteConfigured() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			AccessToken:        cfg.App.AccessToken,
			Version:            cfg.App.Version,
			StorageMode:        cfg.App.StorageMode,
			ScopeID:            cfg.App.ScopeID,
			EncryptionPassword: cfg.App.EncryptionPassword,
			LogPath:            cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			DebounceDelay:  cfg.Workers.DebounceDelay,
			RetryBaseDelay: cfg.Workers.RetryBaseDelay,
			RetryMaxDelay:  cfg.Workers.RetryMaxDelay,
			MaxAttempts:    cfg.Workers.MaxAttempts,
			ProbeInterval:  cfg.Workers.ProbeInterval,
		},
		Vault: ClientVault{
			IdleTimeout:   cfg.Vault.IdleTimeout,
			KDFIterations: cfg.Vault.KDFIterations,
		},
		Command: cfg.Command,
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (c *ClientConfig) applyDefaults() {
	setDefault(&c.Storage.DB.DSN, DefaultClientDSN)
	setDefault(&c.Adapter.RequestTimeout, DefaultRequestTimeout)
	setDefault(&c.Workers.SyncInterval, DefaultSyncInterval)
	setDefault(&c.Workers.DebounceDelay, DefaultDebounceDelay)
	setDefault(&c.Workers.RetryBaseDelay, DefaultRetryBaseDelay)
	setDefault(&c.Workers.RetryMaxDelay, DefaultRetryMaxDelay)
	setDefault(&c.Workers.MaxAttempts, DefaultMaxAttempts)
	setDefault(&c.Vault.IdleTimeout, DefaultIdleTimeout)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
