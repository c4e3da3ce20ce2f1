package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/internal/crypto"
	"github.com/MKhiriev/go-budget-vault/models"
)

// cycleKeys holds the keys derived during one sync cycle. Pushed payloads
// share a single key under a fresh salt; pulled payloads are opened with a
// key derived once per distinct salt. All keys are destroyed by close.
type cycleKeys struct {
	enc      crypto.EncryptionService
	caps     Capabilities
	password string

	sealKey *crypto.Key
	opened  map[string]*crypto.Key
}

func newCycleKeys(enc crypto.EncryptionService, caps Capabilities, password string) *cycleKeys {
	return &cycleKeys{
		enc:      enc,
		caps:     caps,
		password: password,
		opened:   make(map[string]*crypto.Key),
	}
}

// resolvePassword asks the capability provider once when the cycle started
// without a password (a plain mode pulling encrypted rows).
func (k *cycleKeys) resolvePassword(ctx context.Context) (string, error) {
	if k.password != "" {
		return k.password, nil
	}
	password, err := k.caps.EncryptionPassword(ctx)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrPasswordRequired
	}
	k.password = password
	return password, nil
}

func (k *cycleKeys) seal(ctx context.Context, plaintext []byte) (models.EncryptedPayload, error) {
	if k.sealKey == nil {
		password, err := k.resolvePassword(ctx)
		if err != nil {
			return models.EncryptedPayload{}, err
		}
		salt, err := k.enc.GenerateSalt()
		if err != nil {
			return models.EncryptedPayload{}, err
		}
		if k.sealKey, err = k.enc.DeriveKey(password, salt); err != nil {
			return models.EncryptedPayload{}, err
		}
	}
	return k.enc.EncryptWithKey(plaintext, k.sealKey)
}

func (k *cycleKeys) open(ctx context.Context, payload models.EncryptedPayload) ([]byte, error) {
	key, ok := k.opened[payload.Salt]
	if !ok {
		password, err := k.resolvePassword(ctx)
		if err != nil {
			return nil, err
		}
		salt, err := base64.StdEncoding.DecodeString(payload.Salt)
		if err != nil || len(salt) != crypto.SaltSize {
			return nil, fmt.Errorf("%w: malformed salt", crypto.ErrDecryptionFailed)
		}
		if key, err = k.enc.DeriveKey(password, salt); err != nil {
			return nil, fmt.Errorf("%w: %w", crypto.ErrDecryptionFailed, err)
		}
		k.opened[payload.Salt] = key
	}
	return k.enc.DecryptWithKey(payload, key)
}

func (k *cycleKeys) close() {
	if k.sealKey != nil {
		k.sealKey.Destroy()
		k.sealKey = nil
	}
	for salt, key := range k.opened {
		key.Destroy()
		delete(k.opened, salt)
	}
}
