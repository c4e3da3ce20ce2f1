package config

import (
	"fmt"
	"time"
)

// Server defaults.
const (
	DefaultHTTPAddress   = "localhost:8080"
	DefaultTokenIssuer   = "go-budget-vault"
	DefaultTokenDuration = 24 * time.Hour
	DefaultServerTimeout = 30 * time.Second
)

// ServerApp holds the token settings of the remote changelog server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// ServerConfig is the remote changelog server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage Storage
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	setDefault(&serverCfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&serverCfg.App.TokenDuration, DefaultTokenDuration)
	setDefault(&serverCfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&serverCfg.Server.RequestTimeout, DefaultServerTimeout)

	return serverCfg
}
