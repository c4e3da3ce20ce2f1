package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/models"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	return newClientStorages(db, logger.Nop())
}

func at(ms int64) time.Time {
	return time.UnixMilli(1_700_000_000_000 + ms).UTC()
}

func entry(id, entityID string, op models.Operation, ts time.Time) models.ChangeLogEntry {
	e := models.ChangeLogEntry{
		ID:         id,
		ScopeID:    "plan-1",
		EntityType: models.EntityExpense,
		EntityID:   entityID,
		Operation:  op,
		Timestamp:  ts,
		Name:       "groceries",
	}
	if op != models.OperationDelete {
		e.Payload = json.RawMessage(`{"id":"` + entityID + `"}`)
	}
	return e
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

// ── changelog ─────────────────────────────────────────────────────────────────

func TestChangeLog_AppendAndGetUnsynced(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ChangeLog.Append(ctx,
		entry("b", "e1", models.OperationUpdate, at(20)),
		entry("a", "e1", models.OperationCreate, at(10)),
	))

	got, err := s.ChangeLog.GetUnsynced(ctx, "plan-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.True(t, at(10).Equal(got[0].Timestamp))
	assert.Equal(t, models.EntityExpense, got[0].EntityType)
	assert.JSONEq(t, `{"id":"e1"}`, string(got[0].Payload))
	assert.Equal(t, "groceries", got[0].Name)
	assert.False(t, got[0].Synced)

	other, err := s.ChangeLog.GetUnsynced(ctx, "plan-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestChangeLog_AppendIsIdempotentByID(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	first := entry("a", "e1", models.OperationCreate, at(10))
	require.NoError(t, s.ChangeLog.Append(ctx, first))

	rewritten := first
	rewritten.Name = "changed"
	require.NoError(t, s.ChangeLog.Append(ctx, rewritten))

	all, err := s.ChangeLog.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "groceries", all[0].Name)
}

func TestChangeLog_DeleteHasNoPayload(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ChangeLog.Append(ctx, entry("d", "e1", models.OperationDelete, at(5))))

	all, err := s.ChangeLog.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Payload)
}

func TestChangeLog_MarkSyncedAndPrune(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ChangeLog.Append(ctx,
		entry("a", "e1", models.OperationCreate, at(10)),
		entry("b", "e2", models.OperationCreate, at(20)),
		entry("c", "e3", models.OperationCreate, at(30)),
	))
	require.NoError(t, s.ChangeLog.MarkSynced(ctx, "a", "b", "c"))

	unsynced, err := s.ChangeLog.GetUnsynced(ctx, "plan-1")
	require.NoError(t, err)
	assert.Empty(t, unsynced)

	pruned, err := s.ChangeLog.PruneSynced(ctx, "plan-1", at(20))
	require.NoError(t, err)
	assert.EqualValues(t, 2, pruned)

	all, err := s.ChangeLog.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "c", all[0].ID)
}

func TestChangeLog_PruneKeepsUnsynced(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ChangeLog.Append(ctx, entry("a", "e1", models.OperationCreate, at(10))))

	pruned, err := s.ChangeLog.PruneSynced(ctx, "plan-1", at(100))
	require.NoError(t, err)
	assert.Zero(t, pruned)
}

func TestChangeLog_GetLatestForEntity(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	_, found, err := s.ChangeLog.GetLatestForEntity(ctx, "plan-1", models.EntityExpense, "e1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.ChangeLog.Append(ctx,
		entry("a", "e1", models.OperationCreate, at(10)),
		entry("b", "e1", models.OperationUpdate, at(30)),
		entry("c", "e1", models.OperationUpdate, at(20)),
		entry("d", "e2", models.OperationUpdate, at(99)),
	))

	latest, found, err := s.ChangeLog.GetLatestForEntity(ctx, "plan-1", models.EntityExpense, "e1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "b", latest.ID)
}

// ── entities ──────────────────────────────────────────────────────────────────

func TestEntityStore_PutGetDelete(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	plan := models.Entity{ID: "p1", Data: json.RawMessage(`{"name":"2026"}`), UpdatedAt: at(1)}
	require.NoError(t, s.Entities.Put(ctx, models.EntityPlan, mustJSON(t, plan)))

	plan.Data = json.RawMessage(`{"name":"2027"}`)
	require.NoError(t, s.Entities.Put(ctx, models.EntityPlan, mustJSON(t, plan)))

	plans, err := s.Entities.GetAll(ctx, models.EntityPlan)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.JSONEq(t, `{"name":"2027"}`, string(plans[0].Data))

	require.NoError(t, s.Entities.Delete(ctx, models.EntityPlan, "p1"))
	require.NoError(t, s.Entities.Delete(ctx, models.EntityPlan, "missing"))

	plans, err = s.Entities.GetAll(ctx, models.EntityPlan)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestEntityStore_UnknownType(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	err := s.Entities.Put(ctx, models.EntityType("budgetLine"), json.RawMessage(`{"id":"x"}`))
	assert.ErrorIs(t, err, ErrUnknownEntityType)

	_, err = s.Entities.GetAll(ctx, models.EntityAttachment)
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestEntityStore_PutRejectsPayloadWithoutID(t *testing.T) {
	s := newTestClientStorages(t)

	err := s.Entities.Put(context.Background(), models.EntityGoal, json.RawMessage(`{"data":{}}`))
	assert.ErrorIs(t, err, ErrInvalidEntityPayload)
}

func TestEntityStore_Attachments(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	a := models.Attachment{ID: "a1", PlanID: "p1", ExpenseID: "x1", Name: "r.pdf", MimeType: "application/pdf", Size: 3, Blob: []byte{1, 2, 3}, CreatedAt: at(7)}
	require.NoError(t, s.Entities.Put(ctx, models.EntityAttachment, mustJSON(t, a)))

	got, err := s.Entities.GetAllAttachments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []byte{1, 2, 3}, got[0].Blob)
	assert.Equal(t, "x1", got[0].ExpenseID)
	assert.True(t, at(7).Equal(got[0].CreatedAt))

	require.NoError(t, s.Entities.Delete(ctx, models.EntityAttachment, "a1"))
	got, err = s.Entities.GetAllAttachments(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntityStore_ApplyIsAllOrNothing(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	ops := []EntityOp{
		{EntityType: models.EntityBucket, EntityID: "b1", Payload: json.RawMessage(`{"id":"b1","data":{}}`)},
		{EntityType: models.EntityBucket, EntityID: "b2", Payload: json.RawMessage(`not json`)},
	}
	require.Error(t, s.Entities.Apply(ctx, ops))

	buckets, err := s.Entities.GetAll(ctx, models.EntityBucket)
	require.NoError(t, err)
	assert.Empty(t, buckets)

	ops[1] = EntityOp{EntityType: models.EntityBucket, EntityID: "b1", Delete: true}
	ops = append(ops, EntityOp{EntityType: models.EntityAsset, EntityID: "s1", Payload: json.RawMessage(`{"id":"s1","data":{"v":1}}`)})
	require.NoError(t, s.Entities.Apply(ctx, ops))

	buckets, err = s.Entities.GetAll(ctx, models.EntityBucket)
	require.NoError(t, err)
	assert.Empty(t, buckets)

	assets, err := s.Entities.GetAll(ctx, models.EntityAsset)
	require.NoError(t, err)
	assert.Len(t, assets, 1)
}

func TestEntityStore_ReplaceAllKeepsVaultMetaAndKV(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Entities.Put(ctx, models.EntityGoal, json.RawMessage(`{"id":"old","data":{}}`)))
	require.NoError(t, s.ChangeLog.Append(ctx, entry("old-entry", "e1", models.OperationCreate, at(1))))
	require.NoError(t, s.VaultMeta.Save(ctx, models.VaultMeta{Enabled: true, Salt: "c2FsdA=="}))
	require.NoError(t, s.Settings.Set(ctx, "storage_mode", "cloud"))

	snapshot := Snapshot{
		Entities: map[models.EntityType][]models.Entity{
			models.EntityGoal:         {{ID: "g1", Data: json.RawMessage(`{"target":100}`), UpdatedAt: at(2)}},
			models.EntityExchangeRate: {{ID: "r1", Data: json.RawMessage(`{}`), UpdatedAt: at(3)}},
		},
		Attachments: []models.Attachment{{ID: "a1", PlanID: "p1", Blob: []byte("x"), CreatedAt: at(4)}},
		ChangeLog:   []models.ChangeLogEntry{entry("new-entry", "g1", models.OperationCreate, at(5))},
	}
	require.NoError(t, s.Entities.ReplaceAll(ctx, snapshot))

	goals, err := s.Entities.GetAll(ctx, models.EntityGoal)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "g1", goals[0].ID)

	log, err := s.ChangeLog.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "new-entry", log[0].ID)

	meta, err := s.VaultMeta.Get(ctx)
	require.NoError(t, err)
	assert.True(t, meta.Enabled)

	mode, found, err := s.Settings.Get(ctx, "storage_mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "cloud", mode)
}

func TestEntityStore_ReplaceAllRollsBack(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Entities.Put(ctx, models.EntityGoal, json.RawMessage(`{"id":"keep","data":{}}`)))

	err := s.Entities.ReplaceAll(ctx, Snapshot{
		Entities: map[models.EntityType][]models.Entity{
			models.EntityGoal: {{ID: ""}},
		},
	})
	require.ErrorIs(t, err, ErrInvalidEntityPayload)

	goals, err := s.Entities.GetAll(ctx, models.EntityGoal)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "keep", goals[0].ID)
}

func TestEntityStore_Clear(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Entities.Put(ctx, models.EntityLiability, json.RawMessage(`{"id":"l1","data":{}}`)))
	require.NoError(t, s.ChangeLog.Append(ctx, entry("a", "e1", models.OperationCreate, at(1))))
	require.NoError(t, s.Entities.Clear(ctx))

	liabilities, err := s.Entities.GetAll(ctx, models.EntityLiability)
	require.NoError(t, err)
	assert.Empty(t, liabilities)

	log, err := s.ChangeLog.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestEntityStore_SealSnapshotsSavesMetaAndClears(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Entities.Put(ctx, models.EntityPlan, json.RawMessage(`{"id":"p1","data":{}}`)))
	require.NoError(t, s.Entities.Put(ctx, models.EntityAttachment, mustJSON(t, models.Attachment{ID: "a1", PlanID: "p1", Blob: []byte{7}})))
	require.NoError(t, s.ChangeLog.Append(ctx, entry("c1", "e1", models.OperationCreate, at(1))))

	var seen Snapshot
	err := s.Entities.Seal(ctx, func(snapshot Snapshot) (models.VaultMeta, error) {
		seen = snapshot
		return models.VaultMeta{Enabled: true, Salt: "salt", Sealed: "sealed-blob"}, nil
	})
	require.NoError(t, err)

	require.Len(t, seen.Entities[models.EntityPlan], 1)
	require.Len(t, seen.Attachments, 1)
	assert.Equal(t, []byte{7}, seen.Attachments[0].Blob)
	require.Len(t, seen.ChangeLog, 1)

	plans, err := s.Entities.GetAll(ctx, models.EntityPlan)
	require.NoError(t, err)
	assert.Empty(t, plans)
	log, err := s.ChangeLog.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)

	meta, err := s.VaultMeta.Get(ctx)
	require.NoError(t, err)
	assert.True(t, meta.Enabled)
	assert.Equal(t, "sealed-blob", meta.Sealed)
	assert.False(t, meta.UpdatedAt.IsZero())
}

func TestEntityStore_SealFailureChangesNothing(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Entities.Put(ctx, models.EntityGoal, json.RawMessage(`{"id":"g1","data":{}}`)))

	errSeal := errors.New("seal failed")
	err := s.Entities.Seal(ctx, func(Snapshot) (models.VaultMeta, error) {
		return models.VaultMeta{}, errSeal
	})
	require.ErrorIs(t, err, errSeal)

	goals, err := s.Entities.GetAll(ctx, models.EntityGoal)
	require.NoError(t, err)
	assert.Len(t, goals, 1)

	meta, err := s.VaultMeta.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultMeta{}, meta)
}

func TestEntityStore_WriteDuringSealIsNotLost(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Entities.Put(ctx, models.EntityExpense, json.RawMessage(`{"id":"e1","data":{}}`)))

	written := make(chan error, 1)
	err := s.Entities.Seal(ctx, func(snapshot Snapshot) (models.VaultMeta, error) {
		go func() {
			written <- s.Entities.Put(ctx, models.EntityExpense, json.RawMessage(`{"id":"e2","data":{}}`))
		}()
		// the concurrent write has to wait for the sealing transaction
		time.Sleep(50 * time.Millisecond)
		assert.Len(t, snapshot.Entities[models.EntityExpense], 1)
		return models.VaultMeta{Enabled: true, Sealed: "blob"}, nil
	})
	require.NoError(t, err)
	require.NoError(t, <-written)

	expenses, err := s.Entities.GetAll(ctx, models.EntityExpense)
	require.NoError(t, err)
	require.Len(t, expenses, 1, "the write queued behind the seal lands after the clear")
	assert.Equal(t, "e2", expenses[0].ID)
}

// ── kv ────────────────────────────────────────────────────────────────────────

func TestWatermarkStore_NeverMovesBackwards(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	_, found, err := s.Watermarks.Get(ctx, PurposeSyncWatermark, "plan-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Watermarks.Advance(ctx, PurposeSyncWatermark, "plan-1", at(50)))
	require.NoError(t, s.Watermarks.Advance(ctx, PurposeSyncWatermark, "plan-1", at(10)))

	wm, found, err := s.Watermarks.Get(ctx, PurposeSyncWatermark, "plan-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, at(50).Equal(wm))

	require.NoError(t, s.Watermarks.Advance(ctx, PurposeSyncWatermark, "plan-1", at(60)))
	wm, _, err = s.Watermarks.Get(ctx, PurposeSyncWatermark, "plan-1")
	require.NoError(t, err)
	assert.True(t, at(60).Equal(wm))

	_, found, err = s.Watermarks.Get(ctx, PurposeSyncWatermark, "plan-2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsStore_SetGetDelete(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Settings.Set(ctx, "active_scope", "p1"))
	require.NoError(t, s.Settings.Set(ctx, "active_scope", "p2"))

	v, found, err := s.Settings.Get(ctx, "active_scope")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "p2", v)

	require.NoError(t, s.Settings.Delete(ctx, "active_scope"))
	_, found, err = s.Settings.Get(ctx, "active_scope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVaultMetaRepository_SaveGetClear(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	meta, err := s.VaultMeta.Get(ctx)
	require.NoError(t, err)
	assert.False(t, meta.Enabled)

	require.NoError(t, s.VaultMeta.Save(ctx, models.VaultMeta{Enabled: true, Salt: "salt", Sealed: "blob", Verifier: "check", UpdatedAt: at(9)}))

	meta, err = s.VaultMeta.Get(ctx)
	require.NoError(t, err)
	assert.True(t, meta.Enabled)
	assert.Equal(t, "salt", meta.Salt)
	assert.Equal(t, "blob", meta.Sealed)
	assert.Equal(t, "check", meta.Verifier)
	assert.True(t, at(9).Equal(meta.UpdatedAt))

	require.NoError(t, s.VaultMeta.Clear(ctx))
	meta, err = s.VaultMeta.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultMeta{}, meta)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := sqliteErrorClassifier{}
	assert.Equal(t, NonRetryable, c.Classify(assert.AnError))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
