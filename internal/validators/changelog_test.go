// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-vault/models"
)

func ptr(s string) *string { return &s }

func validEntry() models.RemoteChangeLogEntry {
	return models.RemoteChangeLogEntry{
		ID:         "0192f0c1-0000-7000-8000-000000000001",
		ScopeID:    "plan-1",
		EntityType: "expense",
		EntityID:   "exp-1",
		Operation:  "update",
		Timestamp:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Payload:    ptr(`{"id":"exp-1","amount":10}`),
	}
}

func TestNewChangeLogValidator(t *testing.T) {
	require.NotNil(t, NewChangeLogValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewChangeLogValidator()
	ctx := context.Background()
	entry := validEntry()

	assert.NoError(t, v.Validate(ctx, entry))
	assert.NoError(t, v.Validate(ctx, &entry))

	req := models.ChangeLogUpsertRequest{Entries: []models.RemoteChangeLogEntry{entry}, Length: 1}
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	pull := models.ChangeLogPullRequest{OwnerID: "o", ScopeID: "s"}
	assert.NoError(t, v.Validate(ctx, pull))
	assert.NoError(t, v.Validate(ctx, &pull))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, entry, "nope"), ErrUnknownField)
}

func TestValidate_Entry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *models.RemoteChangeLogEntry)
		want   error
	}{
		{"empty id", func(e *models.RemoteChangeLogEntry) { e.ID = "" }, ErrInvalidEntryID},
		{"empty scope", func(e *models.RemoteChangeLogEntry) { e.ScopeID = "" }, ErrInvalidScopeID},
		{"unknown entity type", func(e *models.RemoteChangeLogEntry) { e.EntityType = "invoice" }, ErrInvalidEntityType},
		{"empty entity id", func(e *models.RemoteChangeLogEntry) { e.EntityID = "" }, ErrInvalidEntityID},
		{"unknown operation", func(e *models.RemoteChangeLogEntry) { e.Operation = "upsert" }, ErrInvalidOperation},
		{"zero timestamp", func(e *models.RemoteChangeLogEntry) { e.Timestamp = time.Time{} }, ErrInvalidTimestamp},
		{"update without payload", func(e *models.RemoteChangeLogEntry) { e.Payload = nil }, ErrEmptyPayload},
		{"plain payload not an object", func(e *models.RemoteChangeLogEntry) { e.Payload = ptr(`[1,2]`) }, ErrInvalidPayload},
		{"encrypted payload not an envelope", func(e *models.RemoteChangeLogEntry) { e.IsEncrypted = true }, ErrInvalidPayload},
		{"encrypted delete without payload", func(e *models.RemoteChangeLogEntry) {
			e.Operation = "delete"
			e.Payload = nil
			e.IsEncrypted = true
		}, ErrInvalidPayload},
	}

	v := NewChangeLogValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			assert.ErrorIs(t, v.Validate(context.Background(), e), tt.want)
		})
	}
}

func TestValidate_EntryAccepts(t *testing.T) {
	v := NewChangeLogValidator()

	del := validEntry()
	del.Operation = "delete"
	del.Payload = nil
	assert.NoError(t, v.Validate(context.Background(), del))

	enc := validEntry()
	enc.IsEncrypted = true
	enc.Payload = ptr(`{"iv":"aXY=","ciphertext":"Y3Q=","salt":"c2FsdA=="}`)
	assert.NoError(t, v.Validate(context.Background(), enc))
}

func TestValidate_EntryFieldScoping(t *testing.T) {
	v := NewChangeLogValidator()
	e := validEntry()
	e.Payload = nil

	assert.NoError(t, v.Validate(context.Background(), e, FieldEntryID, FieldScopeID))
	assert.ErrorIs(t, v.Validate(context.Background(), e, FieldPayload), ErrEmptyPayload)
}

func TestValidate_UpsertRequest(t *testing.T) {
	v := NewChangeLogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ChangeLogUpsertRequest{}), ErrEmptyEntries)

	one := []models.RemoteChangeLogEntry{validEntry()}
	assert.ErrorIs(t, v.Validate(ctx, models.ChangeLogUpsertRequest{Entries: one, Length: 2}), ErrLengthMismatch)

	dup := []models.RemoteChangeLogEntry{validEntry(), validEntry()}
	err := v.Validate(ctx, models.ChangeLogUpsertRequest{Entries: dup, Length: 2})
	assert.ErrorIs(t, err, ErrDuplicateEntryID)
	assert.Contains(t, err.Error(), "index 1")

	bad := validEntry()
	bad.EntityID = ""
	err = v.Validate(ctx, models.ChangeLogUpsertRequest{Entries: []models.RemoteChangeLogEntry{validEntry(), bad}, Length: 2})
	assert.ErrorIs(t, err, ErrInvalidEntityID)

	big := make([]models.RemoteChangeLogEntry, MaxBatchSize+1)
	for i := range big {
		big[i] = validEntry()
		big[i].ID = fmt.Sprintf("id-%d", i)
	}
	assert.ErrorIs(t, v.Validate(ctx, models.ChangeLogUpsertRequest{Entries: big, Length: len(big)}), ErrBatchTooLarge)
}

func TestValidate_PullRequest(t *testing.T) {
	v := NewChangeLogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ChangeLogPullRequest{ScopeID: "s"}), ErrInvalidOwnerID)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangeLogPullRequest{OwnerID: "o"}), ErrInvalidScopeID)
	assert.NoError(t, v.Validate(ctx, models.ChangeLogPullRequest{OwnerID: "o"}, FieldOwnerID))
}
