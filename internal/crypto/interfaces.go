// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds all password-based cryptography of the client:
// PBKDF2 key derivation, AES-256-GCM sealing and the in-memory vault key
// session. It knows nothing about storage, the network or sync.
package crypto

import "github.com/MKhiriev/go-budget-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/encryption_service_mock.go -package=mock

// EncryptionService derives keys from passwords and seals data with them.
//
// Scheme:
//
//	salt       = 16 random bytes (fresh per Encrypt)
//	key        = PBKDF2-HMAC-SHA256(password, salt, 600 000 iterations, 32 bytes)
//	iv         = 12 random bytes (fresh per seal)
//	ciphertext = AES-256-GCM(key, iv, plaintext)   (auth tag appended)
type EncryptionService interface {
	// GenerateSalt reads a fresh 16-byte salt from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey runs PBKDF2 over password and salt. Identical inputs always
	// yield the same key. The returned [Key] can only encrypt and decrypt.
	DeriveKey(password string, salt []byte) (*Key, error)

	// Encrypt derives a key under a fresh salt and seals plaintext with a
	// fresh IV.
	Encrypt(plaintext []byte, password string) (models.EncryptedPayload, error)

	// Decrypt re-derives the key from payload.Salt and opens the ciphertext.
	// Returns [ErrDecryptionFailed] on a wrong password, tampered ciphertext
	// or malformed iv/salt.
	Decrypt(payload models.EncryptedPayload, password string) ([]byte, error)

	// EncryptWithKey seals plaintext with an already derived key. The key's
	// salt is echoed into the payload so it stays self-describing.
	EncryptWithKey(plaintext []byte, key *Key) (models.EncryptedPayload, error)

	// DecryptWithKey opens payload with an already derived key.
	DecryptWithKey(payload models.EncryptedPayload, key *Key) ([]byte, error)
}
