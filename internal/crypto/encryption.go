// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-budget-vault/models"
)

const (
	// DefaultIterations is the PBKDF2 work factor (OWASP 2023 for HMAC-SHA256).
	DefaultIterations = 600_000

	// SaltSize is the PBKDF2 salt length in bytes (128 bits).
	SaltSize = 16

	// IVSize is the AES-GCM nonce length in bytes (96 bits).
	IVSize = 12

	// KeySize is the derived AES key length in bytes (256 bits).
	KeySize = 32
)

// Key is a derived AES-256-GCM key. The raw bytes are never exposed; the
// only things a Key can do are seal, open and be destroyed.
type Key struct {
	raw  []byte
	salt []byte
}

// Salt returns a copy of the salt the key was derived with.
func (k *Key) Salt() []byte {
	if k == nil {
		return nil
	}
	return append([]byte(nil), k.salt...)
}

// Destroy overwrites the key material. Destroying twice is safe.
func (k *Key) Destroy() {
	if k == nil {
		return
	}
	clear(k.raw)
	clear(k.salt)
	k.raw = nil
	k.salt = nil
}

func (k *Key) aead() (cipher.AEAD, error) {
	if k == nil || len(k.raw) != KeySize {
		return nil, ErrKeyDestroyed
	}
	block, err := aes.NewCipher(k.raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Option tunes an [EncryptionService].
type Option func(*encryptionService)

// WithIterations overrides the PBKDF2 iteration count. Production code uses
// [DefaultIterations]; tests lower it to keep runs fast.
func WithIterations(iterations int) Option {
	return func(e *encryptionService) {
		if iterations > 0 {
			e.iterations = iterations
		}
	}
}

// encryptionService is the private implementation of [EncryptionService].
type encryptionService struct {
	iterations int
	random     io.Reader
}

// NewEncryptionService constructs an [EncryptionService] with
// [DefaultIterations] unless overridden by opts.
func NewEncryptionService(opts ...Option) EncryptionService {
	e := &encryptionService{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateSalt implements [EncryptionService].
func (e *encryptionService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(e.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [EncryptionService].
func (e *encryptionService) DeriveKey(password string, salt []byte) (*Key, error) {
	if len(salt) == 0 {
		return nil, ErrInvalidSalt
	}
	raw := pbkdf2.Key([]byte(password), salt, e.iterations, KeySize, sha256.New)
	return &Key{raw: raw, salt: append([]byte(nil), salt...)}, nil
}

// Encrypt implements [EncryptionService].
func (e *encryptionService) Encrypt(plaintext []byte, password string) (models.EncryptedPayload, error) {
	salt, err := e.GenerateSalt()
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	key, err := e.DeriveKey(password, salt)
	if err != nil {
		return models.EncryptedPayload{}, err
	}
	defer key.Destroy()

	return e.EncryptWithKey(plaintext, key)
}

// Decrypt implements [EncryptionService]. Every failure, including a
// malformed salt, collapses into [ErrDecryptionFailed].
func (e *encryptionService) Decrypt(payload models.EncryptedPayload, password string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(payload.Salt)
	if err != nil || len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: malformed salt", ErrDecryptionFailed)
	}

	key, err := e.DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	defer key.Destroy()

	return e.DecryptWithKey(payload, key)
}

// EncryptWithKey implements [EncryptionService].
func (e *encryptionService) EncryptWithKey(plaintext []byte, key *Key) (models.EncryptedPayload, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate iv: %w", err)
	}
	return sealWithIV(plaintext, key, iv)
}

// DecryptWithKey implements [EncryptionService].
func (e *encryptionService) DecryptWithKey(payload models.EncryptedPayload, key *Key) ([]byte, error) {
	iv, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil || len(iv) != IVSize {
		return nil, fmt.Errorf("%w: malformed iv", ErrDecryptionFailed)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(payload.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}

	gcm, err := key.aead()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	// Open verifies the auth tag; a mismatch means a wrong key or tampering.
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func sealWithIV(plaintext []byte, key *Key, iv []byte) (models.EncryptedPayload, error) {
	gcm, err := key.aead()
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)
	return models.EncryptedPayload{
		IV:         base64.StdEncoding.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Salt:       base64.StdEncoding.EncodeToString(key.salt),
	}, nil
}
