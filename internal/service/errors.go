package service

import "errors"

// Vault errors. Callers react to them (password prompt, upgrade notice), so
// they are returned rather than reported through a callback.
var (
	ErrVaultCorrupted       = errors.New("vault payload is corrupted")
	ErrVaultUpgradeRequired = errors.New("vault payload version is not supported, upgrade required")
	ErrVaultNotEnabled      = errors.New("vault encryption is not enabled")
	ErrVaultAlreadyEnabled  = errors.New("vault encryption is already enabled")
	ErrVaultSealed          = errors.New("vault is sealed")
	ErrEmptyPassword        = errors.New("password is empty")
)

// Sync errors.
var (
	// ErrPasswordRequired is returned when cloud-encrypted mode is active but
	// no password is available. It is fatal for the cycle and never retried.
	ErrPasswordRequired = errors.New("encryption password required")

	// ErrRemoteNotConfigured is returned when sync is requested without a
	// remote changelog.
	ErrRemoteNotConfigured = errors.New("remote changelog is not configured")

	// ErrInvalidStorageMode is returned when the stored storage mode is unknown.
	ErrInvalidStorageMode = errors.New("invalid storage mode")

	// ErrNoActiveScope is returned by local writes when no plan is active.
	ErrNoActiveScope = errors.New("no active plan selected")
)

// Server-side errors.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoOwnerID             = errors.New("no owner id provided")
)
