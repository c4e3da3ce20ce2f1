package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/crypto"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

type vaultFixture struct {
	svc      *vaultService
	storages *store.ClientStorages
	session  *crypto.VaultKeySession
	enc      crypto.EncryptionService
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	enc := crypto.NewEncryptionService(crypto.WithIterations(1000))
	session := crypto.NewVaultKeySession(enc, time.Hour, nil)
	t.Cleanup(session.Clear)

	svc := NewVaultService(storages.Entities, storages.ChangeLog, storages.VaultMeta, session, enc, logger.Nop()).(*vaultService)
	return &vaultFixture{svc: svc, storages: storages, session: session, enc: enc}
}

func (f *vaultFixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, f.storages.Entities.Put(ctx, models.EntityPlan, json.RawMessage(`{"id":"p1","data":{"name":"2026"},"updatedAt":"2026-02-01T10:00:00.000Z"}`)))
	require.NoError(t, f.storages.Entities.Put(ctx, models.EntityExpense, json.RawMessage(`{"id":"e1","planId":"p1","data":{"amount":42},"updatedAt":"2026-02-01T10:00:00.000Z"}`)))
	require.NoError(t, f.storages.Entities.Put(ctx, models.EntityAttachment, mustMarshal(t, models.Attachment{
		ID: "a1", PlanID: "p1", ExpenseID: "e1", Name: "receipt.png", MimeType: "image/png", Size: 3,
		Blob: []byte{1, 2, 3}, CreatedAt: ts,
	})))
	require.NoError(t, f.storages.ChangeLog.Append(ctx, models.ChangeLogEntry{
		ID: "c1", ScopeID: "p1", EntityType: models.EntityExpense, EntityID: "e1",
		Operation: models.OperationCreate, Timestamp: ts, Payload: json.RawMessage(`{"id":"e1"}`), Name: "lunch",
	}))
}

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func payloadJSON(t *testing.T, p models.VaultPayload) string {
	t.Helper()
	p.ExportedAt = time.Time{}
	return string(mustMarshal(t, p))
}

func TestVaultService_BuildEmptyStoreHasEveryCollection(t *testing.T) {
	f := newVaultFixture(t)

	payload, err := f.svc.BuildVaultPayload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.VaultPayloadVersion, payload.Version)
	assert.False(t, payload.ExportedAt.IsZero())

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(mustMarshal(t, payload), &fields))
	for _, key := range vaultCollectionKeys {
		assert.Equal(t, "[]", string(fields[key]), key)
	}
}

func TestVaultService_BuildRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newVaultFixture(t)
	src.seed(t)

	built, err := src.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)
	require.Len(t, built.Plans, 1)
	require.Len(t, built.Expenses, 1)
	require.Len(t, built.Attachments, 1)
	require.Len(t, built.Changelog, 1)
	assert.Equal(t, "AQID", built.Attachments[0].BlobBase64)

	sealed, err := src.svc.EncryptVaultPayload(ctx, built, "pw")
	require.NoError(t, err)

	dst := newVaultFixture(t)
	opened, err := dst.svc.DecryptVaultPayload(ctx, sealed, "pw")
	require.NoError(t, err)
	require.NoError(t, dst.svc.RestoreVaultPayload(ctx, opened))

	rebuilt, err := dst.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, payloadJSON(t, built), payloadJSON(t, rebuilt))

	attachments, err := dst.storages.Entities.GetAllAttachments(ctx)
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, []byte{1, 2, 3}, attachments[0].Blob)
}

func TestVaultService_RestoreRejectsOtherVersions(t *testing.T) {
	f := newVaultFixture(t)
	f.seed(t)

	for _, version := range []int{0, 2} {
		err := f.svc.RestoreVaultPayload(context.Background(), models.VaultPayload{Version: version})
		assert.ErrorIs(t, err, ErrVaultUpgradeRequired)
	}

	// nothing was replaced
	plans, err := f.storages.Entities.GetAll(context.Background(), models.EntityPlan)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestVaultService_RestoreRejectsBadBlob(t *testing.T) {
	f := newVaultFixture(t)

	err := f.svc.RestoreVaultPayload(context.Background(), models.VaultPayload{
		Version:     models.VaultPayloadVersion,
		Attachments: []models.VaultAttachment{{ID: "a1", BlobBase64: "!!"}},
	})
	assert.ErrorIs(t, err, ErrVaultCorrupted)
}

func TestVaultService_DecryptChecksVersionBeforeStructure(t *testing.T) {
	f := newVaultFixture(t)

	sealed, err := f.enc.Encrypt([]byte(`{"version":2,"plans":"not-an-array"}`), "pw")
	require.NoError(t, err)

	_, err = f.svc.DecryptVaultPayload(context.Background(), string(mustMarshal(t, sealed)), "pw")
	assert.ErrorIs(t, err, ErrVaultUpgradeRequired)
	assert.NotErrorIs(t, err, ErrVaultCorrupted)
}

func TestVaultService_DecryptReportsCorruption(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	valid, err := f.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)
	validJSON := mustMarshal(t, valid)

	var missingPlans map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(validJSON, &missingPlans))
	delete(missingPlans, "plans")

	tests := []struct {
		name  string
		plain []byte
	}{
		{"not json", []byte("garbage")},
		{"no version", []byte(`{"plans":[]}`)},
		{"missing collection", mustMarshal(t, missingPlans)},
		{"entity without id", []byte(`{"version":1,"plans":[{"data":{}}],"buckets":[],"taxComponents":[],"expenses":[],"attachments":[],"goals":[],"assets":[],"liabilities":[],"snapshots":[],"netWorthSnapshots":[],"changelog":[],"recurringTemplates":[],"exchangeRates":[]}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := f.enc.Encrypt(tt.plain, "pw")
			require.NoError(t, err)

			_, err = f.svc.DecryptVaultPayload(ctx, string(mustMarshal(t, sealed)), "pw")
			assert.ErrorIs(t, err, ErrVaultCorrupted)
		})
	}

	_, err = f.svc.DecryptVaultPayload(ctx, "{", "pw")
	assert.ErrorIs(t, err, ErrVaultCorrupted)
	_, err = f.svc.DecryptVaultPayload(ctx, `{"iv":"","ciphertext":"x","salt":"y"}`, "pw")
	assert.ErrorIs(t, err, ErrVaultCorrupted)
}

func TestVaultService_DecryptWrongPassword(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	payload, err := f.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)
	sealed, err := f.svc.EncryptVaultPayload(ctx, payload, "right")
	require.NoError(t, err)

	_, err = f.svc.DecryptVaultPayload(ctx, sealed, "wrong")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestVaultService_SessionKeyRequiredWithoutPassword(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.svc.EncryptVaultPayload(context.Background(), models.VaultPayload{Version: 1}, "")
	assert.ErrorIs(t, err, crypto.ErrVaultLocked)
}

func TestVaultService_EnableLockUnlock(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	f.seed(t)

	before, err := f.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.EnableEncryption(ctx, "secret"))
	assert.ErrorIs(t, f.svc.EnableEncryption(ctx, "secret"), ErrVaultAlreadyEnabled)

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultStatus{Enabled: true, SessionActive: true}, status)

	require.NoError(t, f.svc.Lock(ctx))
	status, err = f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultStatus{Enabled: true, Locked: true}, status)

	plans, err := f.storages.Entities.GetAll(ctx, models.EntityPlan)
	require.NoError(t, err)
	assert.Empty(t, plans, "sealed vault leaves no plaintext rows")

	// locking again is harmless
	require.NoError(t, f.svc.Lock(ctx))

	assert.ErrorIs(t, f.svc.Unlock(ctx, "nope"), crypto.ErrDecryptionFailed)
	assert.False(t, f.session.HasActiveKey())

	require.NoError(t, f.svc.Unlock(ctx, "secret"))
	status, err = f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultStatus{Enabled: true, SessionActive: true}, status)

	after, err := f.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, payloadJSON(t, before), payloadJSON(t, after))
}

func TestVaultService_LockWithoutKey(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Lock(ctx), ErrVaultNotEnabled)

	require.NoError(t, f.svc.EnableEncryption(ctx, "secret"))
	f.session.Clear()
	assert.ErrorIs(t, f.svc.Lock(ctx), crypto.ErrVaultLocked)
}

func TestVaultService_UnlockNotEnabled(t *testing.T) {
	f := newVaultFixture(t)
	assert.ErrorIs(t, f.svc.Unlock(context.Background(), "pw"), ErrVaultNotEnabled)
}

func TestVaultService_UnlockUnsealedOnlyVerifies(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.EnableEncryption(ctx, "secret"))
	f.session.Clear()

	assert.ErrorIs(t, f.svc.Unlock(ctx, "wrong"), crypto.ErrDecryptionFailed)
	require.NoError(t, f.svc.Unlock(ctx, "secret"))
	assert.True(t, f.session.HasActiveKey())
}

func TestVaultService_DisableEncryption(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	f.seed(t)

	require.NoError(t, f.svc.EnableEncryption(ctx, "secret"))
	require.NoError(t, f.svc.Lock(ctx))

	assert.ErrorIs(t, f.svc.DisableEncryption(ctx, "wrong"), crypto.ErrDecryptionFailed)
	require.NoError(t, f.svc.DisableEncryption(ctx, "secret"))

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultStatus{}, status)

	plans, err := f.storages.Entities.GetAll(ctx, models.EntityPlan)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestVaultService_ExportImport(t *testing.T) {
	ctx := context.Background()
	src := newVaultFixture(t)
	src.seed(t)

	_, err := src.svc.Export(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	backup, err := src.svc.Export(ctx, "backup-pw")
	require.NoError(t, err)

	dst := newVaultFixture(t)
	assert.ErrorIs(t, dst.svc.Import(ctx, backup, "wrong"), crypto.ErrDecryptionFailed)
	require.NoError(t, dst.svc.Import(ctx, backup, "backup-pw"))

	want, err := src.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)
	got, err := dst.svc.BuildVaultPayload(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, payloadJSON(t, want), payloadJSON(t, got))
}

func TestVaultService_ExportRefusedWhileSealed(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.EnableEncryption(ctx, "secret"))
	require.NoError(t, f.svc.Lock(ctx))

	_, err := f.svc.Export(ctx, "pw")
	assert.ErrorIs(t, err, ErrVaultSealed)
	assert.ErrorIs(t, f.svc.Import(ctx, "{}", "pw"), ErrVaultSealed)
}
