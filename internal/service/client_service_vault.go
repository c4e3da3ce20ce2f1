package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-budget-vault/internal/crypto"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

// verifierToken is sealed with the vault key on enable. Opening it later
// proves a password even while the dataset itself is not sealed.
const verifierToken = "go-budget-vault:vault-key-check:v1"

// vaultCollectionKeys are the JSON keys every version 1 payload must carry
// as arrays.
var vaultCollectionKeys = []string{
	"plans", "buckets", "taxComponents", "expenses", "attachments", "goals", "assets",
	"liabilities", "snapshots", "netWorthSnapshots", "changelog", "recurringTemplates", "exchangeRates",
}

type vaultService struct {
	entities  store.EntityStore
	changelog store.ChangeLogRepository
	meta      store.VaultMetaRepository
	session   *crypto.VaultKeySession
	enc       crypto.EncryptionService

	now    func() time.Time
	logger *logger.Logger
}

// NewVaultService builds the [VaultService] over the local store and the
// shared key session.
func NewVaultService(
	entities store.EntityStore,
	changelog store.ChangeLogRepository,
	meta store.VaultMetaRepository,
	session *crypto.VaultKeySession,
	enc crypto.EncryptionService,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		entities:  entities,
		changelog: changelog,
		meta:      meta,
		session:   session,
		enc:       enc,
		now:       models.Now,
		logger:    logger,
	}
}

// BuildVaultPayload reads every collection concurrently. The store is not
// modified.
func (v *vaultService) BuildVaultPayload(ctx context.Context) (models.VaultPayload, error) {
	collections := (&models.VaultPayload{}).Collections()

	kinds := make([]models.EntityType, 0, len(collections))
	for _, kind := range models.EntityTypes {
		if _, ok := collections[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	results := make([][]models.Entity, len(kinds))

	var (
		attachments []models.Attachment
		changelog   []models.ChangeLogEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			entities, err := v.entities.GetAll(gctx, kind)
			if err != nil {
				return fmt.Errorf("read %s: %w", kind, err)
			}
			results[i] = entities
			return nil
		})
	}
	g.Go(func() error {
		var err error
		if attachments, err = v.entities.GetAllAttachments(gctx); err != nil {
			return fmt.Errorf("read attachments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if changelog, err = v.changelog.GetAll(gctx); err != nil {
			return fmt.Errorf("read changelog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.BuildVaultPayload").Msg("failed to read local store")
		return models.VaultPayload{}, err
	}

	snapshot := store.Snapshot{
		Entities:    make(map[models.EntityType][]models.Entity, len(kinds)),
		Attachments: attachments,
		ChangeLog:   changelog,
	}
	for i, kind := range kinds {
		snapshot.Entities[kind] = results[i]
	}
	return v.payloadFromSnapshot(snapshot), nil
}

// payloadFromSnapshot converts a store snapshot into a version 1 payload.
// Every collection is non-nil so it serializes as an array.
func (v *vaultService) payloadFromSnapshot(snapshot store.Snapshot) models.VaultPayload {
	payload := models.VaultPayload{Version: models.VaultPayloadVersion, ExportedAt: v.now()}
	for kind, col := range payload.Collections() {
		*col = nonNil(snapshot.Entities[kind])
	}

	payload.Attachments = make([]models.VaultAttachment, 0, len(snapshot.Attachments))
	for _, a := range snapshot.Attachments {
		payload.Attachments = append(payload.Attachments, models.VaultAttachment{
			ID:         a.ID,
			PlanID:     a.PlanID,
			ExpenseID:  a.ExpenseID,
			Name:       a.Name,
			MimeType:   a.MimeType,
			Size:       a.Size,
			BlobBase64: base64.StdEncoding.EncodeToString(a.Blob),
			CreatedAt:  a.CreatedAt,
		})
	}
	payload.Changelog = nonNil(snapshot.ChangeLog)
	return payload
}

// RestoreVaultPayload replaces every collection with the payload in one
// transaction. Vault metadata is kept.
func (v *vaultService) RestoreVaultPayload(ctx context.Context, payload models.VaultPayload) error {
	if payload.Version != models.VaultPayloadVersion {
		return fmt.Errorf("%w: got version %d, want %d", ErrVaultUpgradeRequired, payload.Version, models.VaultPayloadVersion)
	}

	snapshot := store.Snapshot{
		Entities:    make(map[models.EntityType][]models.Entity),
		Attachments: make([]models.Attachment, 0, len(payload.Attachments)),
		ChangeLog:   payload.Changelog,
	}
	for kind, col := range payload.Collections() {
		snapshot.Entities[kind] = *col
	}
	for _, a := range payload.Attachments {
		blob, err := base64.StdEncoding.DecodeString(a.BlobBase64)
		if err != nil {
			return fmt.Errorf("%w: attachment %s: %w", ErrVaultCorrupted, a.ID, err)
		}
		snapshot.Attachments = append(snapshot.Attachments, models.Attachment{
			ID:        a.ID,
			PlanID:    a.PlanID,
			ExpenseID: a.ExpenseID,
			Name:      a.Name,
			MimeType:  a.MimeType,
			Size:      a.Size,
			Blob:      blob,
			CreatedAt: a.CreatedAt,
		})
	}

	if err := v.entities.ReplaceAll(ctx, snapshot); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.RestoreVaultPayload").Msg("failed to restore snapshot")
		return fmt.Errorf("restore snapshot: %w", err)
	}
	return nil
}

// EncryptVaultPayload seals payload with password under a fresh salt, or
// with the active session key when password is empty.
func (v *vaultService) EncryptVaultPayload(ctx context.Context, payload models.VaultPayload, password string) (string, error) {
	plain, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal vault payload: %w", err)
	}

	var sealed models.EncryptedPayload
	if password != "" {
		sealed, err = v.enc.Encrypt(plain, password)
	} else {
		sealed, err = v.session.EncryptWithActiveKey(plain)
	}
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(sealed)
	if err != nil {
		return "", fmt.Errorf("marshal encrypted payload: %w", err)
	}
	return string(out), nil
}

// DecryptVaultPayload opens ciphertext with password, or with the active
// session key when password is empty. The version is checked before any
// structural validation.
func (v *vaultService) DecryptVaultPayload(ctx context.Context, ciphertext, password string) (models.VaultPayload, error) {
	var envelope models.EncryptedPayload
	if err := json.Unmarshal([]byte(ciphertext), &envelope); err != nil {
		return models.VaultPayload{}, fmt.Errorf("%w: envelope: %w", ErrVaultCorrupted, err)
	}
	if envelope.IV == "" || envelope.Ciphertext == "" || envelope.Salt == "" {
		return models.VaultPayload{}, fmt.Errorf("%w: incomplete envelope", ErrVaultCorrupted)
	}

	var (
		plain []byte
		err   error
	)
	if password != "" {
		plain, err = v.enc.Decrypt(envelope, password)
	} else {
		plain, err = v.session.DecryptWithActiveKey(envelope)
	}
	if err != nil {
		return models.VaultPayload{}, err
	}

	return parseVaultPayload(plain)
}

func parseVaultPayload(plain []byte) (models.VaultPayload, error) {
	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(plain, &probe); err != nil {
		return models.VaultPayload{}, fmt.Errorf("%w: %w", ErrVaultCorrupted, err)
	}
	if probe.Version == nil {
		return models.VaultPayload{}, fmt.Errorf("%w: missing version", ErrVaultCorrupted)
	}
	if *probe.Version != models.VaultPayloadVersion {
		return models.VaultPayload{}, fmt.Errorf("%w: got version %d, want %d", ErrVaultUpgradeRequired, *probe.Version, models.VaultPayloadVersion)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(plain, &fields); err != nil {
		return models.VaultPayload{}, fmt.Errorf("%w: %w", ErrVaultCorrupted, err)
	}
	for _, key := range vaultCollectionKeys {
		raw, ok := fields[key]
		if !ok || len(raw) == 0 || raw[0] != '[' {
			return models.VaultPayload{}, fmt.Errorf("%w: %s must be an array", ErrVaultCorrupted, key)
		}
	}

	var payload models.VaultPayload
	if err := json.Unmarshal(plain, &payload); err != nil {
		return models.VaultPayload{}, fmt.Errorf("%w: %w", ErrVaultCorrupted, err)
	}

	for kind, col := range payload.Collections() {
		for i, e := range *col {
			if e.ID == "" {
				return models.VaultPayload{}, fmt.Errorf("%w: %s[%d] has no id", ErrVaultCorrupted, kind, i)
			}
		}
	}
	for i, a := range payload.Attachments {
		if a.ID == "" {
			return models.VaultPayload{}, fmt.Errorf("%w: attachments[%d] has no id", ErrVaultCorrupted, i)
		}
		if _, err := base64.StdEncoding.DecodeString(a.BlobBase64); err != nil {
			return models.VaultPayload{}, fmt.Errorf("%w: attachments[%d] blob: %w", ErrVaultCorrupted, i, err)
		}
	}
	for i, c := range payload.Changelog {
		if c.ID == "" {
			return models.VaultPayload{}, fmt.Errorf("%w: changelog[%d] has no id", ErrVaultCorrupted, i)
		}
	}

	return payload, nil
}

func (v *vaultService) EnableEncryption(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	meta, err := v.meta.Get(ctx)
	if err != nil {
		return fmt.Errorf("read vault meta: %w", err)
	}
	if meta.Enabled {
		return ErrVaultAlreadyEnabled
	}

	if err = v.session.Activate(password, nil); err != nil {
		return fmt.Errorf("activate vault key: %w", err)
	}
	verifier, err := v.sealVerifier()
	if err != nil {
		v.session.Clear()
		return err
	}

	meta = models.VaultMeta{
		Enabled:  true,
		Salt:     base64.StdEncoding.EncodeToString(v.session.Salt()),
		Verifier: verifier,
	}
	if err = v.meta.Save(ctx, meta); err != nil {
		v.session.Clear()
		return fmt.Errorf("save vault meta: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "vaultService.EnableEncryption").Msg("vault encryption enabled")
	return nil
}

// Lock seals the dataset with the active key and empties the collections in
// one transaction, then clears the key. Locking a sealed vault only clears
// the key.
func (v *vaultService) Lock(ctx context.Context) error {
	meta, err := v.enabledMeta(ctx)
	if err != nil {
		return err
	}
	if meta.Sealed != "" {
		v.session.Clear()
		return nil
	}
	if !v.session.HasActiveKey() {
		return crypto.ErrVaultLocked
	}

	err = v.entities.Seal(ctx, func(snapshot store.Snapshot) (models.VaultMeta, error) {
		sealed, err := v.EncryptVaultPayload(ctx, v.payloadFromSnapshot(snapshot), "")
		if err != nil {
			return models.VaultMeta{}, fmt.Errorf("seal vault payload: %w", err)
		}
		meta.Sealed = sealed
		meta.UpdatedAt = time.Time{}
		return meta, nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.Lock").Msg("failed to seal local store")
		return fmt.Errorf("seal local store: %w", err)
	}
	v.session.Clear()

	logger.FromContext(ctx).Info().Str("func", "vaultService.Lock").Msg("vault locked")
	return nil
}

// Unlock verifies password, activates the session key and, when the dataset
// is sealed, restores it. A wrong password leaves the session cleared.
func (v *vaultService) Unlock(ctx context.Context, password string) error {
	meta, err := v.enabledMeta(ctx)
	if err != nil {
		return err
	}
	if err = v.activateVerified(meta, password); err != nil {
		return err
	}
	if meta.Sealed == "" {
		return nil
	}

	payload, err := v.DecryptVaultPayload(ctx, meta.Sealed, "")
	if err != nil {
		v.session.Clear()
		return err
	}
	if err = v.RestoreVaultPayload(ctx, payload); err != nil {
		v.session.Clear()
		return err
	}

	meta.Sealed = ""
	meta.UpdatedAt = time.Time{}
	if err = v.meta.Save(ctx, meta); err != nil {
		return fmt.Errorf("drop sealed vault: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "vaultService.Unlock").Msg("vault unlocked")
	return nil
}

func (v *vaultService) DisableEncryption(ctx context.Context, password string) error {
	if err := v.Unlock(ctx, password); err != nil {
		return err
	}
	if err := v.meta.Clear(ctx); err != nil {
		return fmt.Errorf("clear vault meta: %w", err)
	}
	v.session.Clear()

	logger.FromContext(ctx).Info().Str("func", "vaultService.DisableEncryption").Msg("vault encryption disabled")
	return nil
}

// Export returns a portable backup sealed with password.
func (v *vaultService) Export(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if err := v.ensureNotSealed(ctx); err != nil {
		return "", err
	}

	payload, err := v.BuildVaultPayload(ctx)
	if err != nil {
		return "", err
	}
	return v.EncryptVaultPayload(ctx, payload, password)
}

// Import replaces the local store with a backup produced by Export.
func (v *vaultService) Import(ctx context.Context, data, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if err := v.ensureNotSealed(ctx); err != nil {
		return err
	}

	payload, err := v.DecryptVaultPayload(ctx, data, password)
	if err != nil {
		return err
	}
	return v.RestoreVaultPayload(ctx, payload)
}

func (v *vaultService) Status(ctx context.Context) (models.VaultStatus, error) {
	meta, err := v.meta.Get(ctx)
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("read vault meta: %w", err)
	}
	return models.VaultStatus{
		Enabled:       meta.Enabled,
		Locked:        meta.Sealed != "",
		SessionActive: v.session.HasActiveKey(),
	}, nil
}

func (v *vaultService) enabledMeta(ctx context.Context) (models.VaultMeta, error) {
	meta, err := v.meta.Get(ctx)
	if err != nil {
		return models.VaultMeta{}, fmt.Errorf("read vault meta: %w", err)
	}
	if !meta.Enabled {
		return models.VaultMeta{}, ErrVaultNotEnabled
	}
	return meta, nil
}

func (v *vaultService) ensureNotSealed(ctx context.Context) error {
	meta, err := v.meta.Get(ctx)
	if err != nil {
		return fmt.Errorf("read vault meta: %w", err)
	}
	if meta.Sealed != "" {
		return ErrVaultSealed
	}
	return nil
}

// activateVerified derives the key from the stored salt and opens the
// verifier with it.
func (v *vaultService) activateVerified(meta models.VaultMeta, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	salt, err := base64.StdEncoding.DecodeString(meta.Salt)
	if err != nil || len(salt) == 0 {
		return fmt.Errorf("%w: stored salt", ErrVaultCorrupted)
	}

	if err = v.session.Activate(password, salt); err != nil {
		return fmt.Errorf("activate vault key: %w", err)
	}
	if meta.Verifier == "" {
		return nil
	}

	var envelope models.EncryptedPayload
	if err = json.Unmarshal([]byte(meta.Verifier), &envelope); err != nil {
		v.session.Clear()
		return fmt.Errorf("%w: verifier: %w", ErrVaultCorrupted, err)
	}
	plain, err := v.session.DecryptWithActiveKey(envelope)
	if err != nil || string(plain) != verifierToken {
		v.session.Clear()
		if err == nil {
			err = crypto.ErrDecryptionFailed
		}
		return err
	}
	return nil
}

func (v *vaultService) sealVerifier() (string, error) {
	sealed, err := v.session.EncryptWithActiveKey([]byte(verifierToken))
	if err != nil {
		return "", fmt.Errorf("seal verifier: %w", err)
	}
	out, err := json.Marshal(sealed)
	if err != nil {
		return "", fmt.Errorf("marshal verifier: %w", err)
	}
	return string(out), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
