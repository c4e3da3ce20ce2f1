package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned whenever a ciphertext cannot be opened:
	// wrong password, flipped bits, or malformed iv/salt. The cause is
	// deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrVaultLocked is returned by session operations when no key is active.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrInvalidSalt is returned by DeriveKey for an empty salt.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrKeyDestroyed is returned when a wiped key is used.
	ErrKeyDestroyed = errors.New("key was destroyed")
)
