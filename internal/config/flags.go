package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-token client access token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-remote remote changelog base url
//	-remote-timeout remote request timeout
//	-sync-interval auto-sync period
//	-debounce debounced sync quiet period
//	-retry-base first backoff delay
//	-retry-max backoff cap
//	-max-attempts failures before giving up
//	-probe-interval connectivity probe period
//	-idle-timeout vault auto-lock timeout
//	-mode client storage mode
//	-scope active plan id
//
// Arguments left after the flags form the client command.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-budget-vault", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var accessToken string
	var requestTimeout time.Duration
	var remoteAddress string
	var remoteTimeout time.Duration
	var syncInterval, debounceDelay, retryBase, retryMax, probeInterval time.Duration
	var maxAttempts int
	var idleTimeout time.Duration
	var storageMode, scopeID string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&accessToken, "token", "", "Client access token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&remoteAddress, "remote", "", "Remote changelog base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Auto-sync period")
	fs.DurationVar(&debounceDelay, "debounce", 0, "Debounced sync quiet period")
	fs.DurationVar(&retryBase, "retry-base", 0, "First retry backoff delay")
	fs.DurationVar(&retryMax, "retry-max", 0, "Retry backoff cap")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Consecutive failures before giving up")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe period")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Vault auto-lock timeout")
	fs.StringVar(&storageMode, "mode", "", "Client storage mode: local-only, cloud or cloud-encrypted")
	fs.StringVar(&scopeID, "scope", "", "Active plan id")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var command []string
	if fs.NArg() > 0 {
		command = fs.Args()
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			AccessToken:   accessToken,
			StorageMode:   storageMode,
			ScopeID:       scopeID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			DebounceDelay:  debounceDelay,
			RetryBaseDelay: retryBase,
			RetryMaxDelay:  retryMax,
			MaxAttempts:    maxAttempts,
			ProbeInterval:  probeInterval,
		},
		Vault:        Vault{IdleTimeout: idleTimeout},
		JSONFilePath: jsonConfigPath,
		Command:      command,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
