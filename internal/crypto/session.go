// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-vault/models"
)

// DefaultIdleTimeout is how long a session key survives without input.
const DefaultIdleTimeout = 5 * time.Minute

// LockReason explains why the session key was cleared.
type LockReason string

const (
	LockReasonManual   LockReason = "manual"
	LockReasonIdle     LockReason = "idle"
	LockReasonHidden   LockReason = "hidden"
	LockReasonReplaced LockReason = "replaced"
)

// VaultKeySession owns the single active vault key of the application.
// It is created once by the security context and shared by reference with
// the vault service and sync engine. The key is never persisted.
//
// While a key is active the session listens for activity and visibility
// notifications from the host: activity pushes the idle deadline forward,
// going hidden wipes the key at once.
type VaultKeySession struct {
	enc         EncryptionService
	idleTimeout time.Duration
	onLock      func(LockReason)

	mu        sync.Mutex
	key       *Key
	timer     *time.Timer
	listening bool
	// generation invalidates idle timers that fired after a reset or clear.
	generation uint64
}

// NewVaultKeySession creates a locked session. A non-positive idleTimeout
// falls back to [DefaultIdleTimeout]. onLock, if set, is called after every
// clear that actually removed a key, outside the session lock.
func NewVaultKeySession(enc EncryptionService, idleTimeout time.Duration, onLock func(LockReason)) *VaultKeySession {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &VaultKeySession{
		enc:         enc,
		idleTimeout: idleTimeout,
		onLock:      onLock,
	}
}

// Activate derives the session key. With a salt it re-derives the existing
// vault key (unlock); with a nil salt it picks a fresh one (first enable).
// Any previously active key is wiped.
func (s *VaultKeySession) Activate(password string, salt []byte) error {
	if len(salt) == 0 {
		fresh, err := s.enc.GenerateSalt()
		if err != nil {
			return err
		}
		salt = fresh
	}

	// derivation is slow, keep it outside the lock
	key, err := s.enc.DeriveKey(password, salt)
	if err != nil {
		return err
	}

	s.mu.Lock()
	replaced := s.key != nil
	s.wipeLocked()
	s.key = key
	s.listening = true
	s.armTimerLocked()
	s.mu.Unlock()

	if replaced && s.onLock != nil {
		s.onLock(LockReasonReplaced)
	}
	return nil
}

// HasActiveKey reports whether a key is currently held.
func (s *VaultKeySession) HasActiveKey() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key != nil
}

// Salt returns a copy of the active key's salt, or nil when locked.
func (s *VaultKeySession) Salt() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key.Salt()
}

// EncryptWithActiveKey seals plaintext with the session key.
func (s *VaultKeySession) EncryptWithActiveKey(plaintext []byte) (models.EncryptedPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return models.EncryptedPayload{}, ErrVaultLocked
	}
	return s.enc.EncryptWithKey(plaintext, s.key)
}

// DecryptWithActiveKey opens payload with the session key.
func (s *VaultKeySession) DecryptWithActiveKey(payload models.EncryptedPayload) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return nil, ErrVaultLocked
	}
	return s.enc.DecryptWithKey(payload, s.key)
}

// NotifyActivity records qualifying user input and restarts the idle timer.
// Ignored while locked.
func (s *VaultKeySession) NotifyActivity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil || !s.listening {
		return
	}
	s.armTimerLocked()
}

// NotifyVisibility reports the host's visibility. Becoming hidden while a
// key is active clears it before NotifyVisibility returns.
func (s *VaultKeySession) NotifyVisibility(hidden bool) {
	if !hidden {
		return
	}

	s.mu.Lock()
	if s.key == nil || !s.listening {
		s.mu.Unlock()
		return
	}
	s.wipeLocked()
	s.mu.Unlock()

	s.notifyLock(LockReasonHidden)
}

// Clear wipes the key and salt, stops the idle timer and detaches the
// listeners. Calling it on a locked session is a no-op.
func (s *VaultKeySession) Clear() {
	s.mu.Lock()
	had := s.key != nil
	s.wipeLocked()
	s.mu.Unlock()

	if had {
		s.notifyLock(LockReasonManual)
	}
}

func (s *VaultKeySession) expire(generation uint64) {
	s.mu.Lock()
	if generation != s.generation || s.key == nil {
		s.mu.Unlock()
		return
	}
	s.wipeLocked()
	s.mu.Unlock()

	s.notifyLock(LockReasonIdle)
}

func (s *VaultKeySession) armTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.generation++
	gen := s.generation
	s.timer = time.AfterFunc(s.idleTimeout, func() { s.expire(gen) })
}

func (s *VaultKeySession) wipeLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
	s.listening = false
	if s.key != nil {
		s.key.Destroy()
		s.key = nil
	}
}

func (s *VaultKeySession) notifyLock(reason LockReason) {
	if s.onLock != nil {
		s.onLock(reason)
	}
}
