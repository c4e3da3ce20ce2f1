package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
// Durations are written as strings ("30s") or integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		AccessToken   string   `json:"access_token"`
		Version       string   `json:"version"`
		StorageMode   string   `json:"storage_mode"`
		ScopeID       string   `json:"scope_id"`
		LogPath       string   `json:"log_path"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval   Duration `json:"sync_interval"`
		DebounceDelay  Duration `json:"debounce_delay"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		RetryMaxDelay  Duration `json:"retry_max_delay"`
		MaxAttempts    int      `json:"max_attempts"`
		ProbeInterval  Duration `json:"probe_interval"`
	} `json:"workers,omitempty"`

	Vault struct {
		IdleTimeout   Duration `json:"idle_timeout"`
		KDFIterations int      `json:"kdf_iterations"`
	} `json:"vault,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			AccessToken:   jsonCfg.App.AccessToken,
			Version:       jsonCfg.App.Version,
			StorageMode:   jsonCfg.App.StorageMode,
			ScopeID:       jsonCfg.App.ScopeID,
			LogPath:       jsonCfg.App.LogPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:   time.Duration(jsonCfg.Workers.SyncInterval),
			DebounceDelay:  time.Duration(jsonCfg.Workers.DebounceDelay),
			RetryBaseDelay: time.Duration(jsonCfg.Workers.RetryBaseDelay),
			RetryMaxDelay:  time.Duration(jsonCfg.Workers.RetryMaxDelay),
			MaxAttempts:    jsonCfg.Workers.MaxAttempts,
			ProbeInterval:  time.Duration(jsonCfg.Workers.ProbeInterval),
		},
		Vault: Vault{
			IdleTimeout:   time.Duration(jsonCfg.Vault.IdleTimeout),
			KDFIterations: jsonCfg.Vault.KDFIterations,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
