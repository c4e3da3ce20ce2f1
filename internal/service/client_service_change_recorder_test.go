package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/mock"
	"github.com/MKhiriev/go-budget-vault/models"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func newTestRecorder(t *testing.T, onRecorded func(context.Context)) (*changeRecorder, *mock.MockChangeLogRepository) {
	t.Helper()
	changelog := mock.NewMockChangeLogRepository(gomock.NewController(t))
	r := NewChangeRecorder(changelog, fixedIDs{id: "0190-id"}, onRecorded, logger.Nop()).(*changeRecorder)
	r.now = func() time.Time { return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC) }
	return r, changelog
}

func TestChangeRecorder_RecordsSnapshot(t *testing.T) {
	calls := 0
	r, changelog := newTestRecorder(t, func(context.Context) { calls++ })

	changelog.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entries ...models.ChangeLogEntry) error {
			assert.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, "0190-id", e.ID)
			assert.Equal(t, "plan-1", e.ScopeID)
			assert.Equal(t, models.EntityBucket, e.EntityType)
			assert.Equal(t, models.OperationCreate, e.Operation)
			assert.Equal(t, "Rent", e.Name)
			assert.Equal(t, time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC), e.Timestamp)
			assert.JSONEq(t, `{"id":"b1","data":{"limit":900}}`, string(e.Payload))
			assert.False(t, e.Synced)
			return nil
		})

	r.RecordChange(context.Background(), "plan-1", models.EntityBucket, "b1", models.OperationCreate,
		map[string]any{"id": "b1", "data": map[string]int{"limit": 900}}, "Rent")

	assert.Equal(t, 1, calls)
}

func TestChangeRecorder_DeleteHasNoPayload(t *testing.T) {
	r, changelog := newTestRecorder(t, nil)

	changelog.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entries ...models.ChangeLogEntry) error {
			assert.Nil(t, entries[0].Payload)
			return nil
		})

	r.RecordChange(context.Background(), "plan-1", models.EntityBucket, "b1", models.OperationDelete, map[string]string{"id": "b1"}, "")
}

func TestChangeRecorder_RawJSONIsKept(t *testing.T) {
	r, changelog := newTestRecorder(t, nil)

	changelog.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entries ...models.ChangeLogEntry) error {
			assert.Equal(t, `{"id":"e1"}`, string(entries[0].Payload))
			return nil
		})

	r.RecordChange(context.Background(), "plan-1", models.EntityExpense, "e1", models.OperationUpdate, json.RawMessage(`{"id":"e1"}`), "")
}

func TestChangeRecorder_InvalidPayloadIsDropped(t *testing.T) {
	calls := 0
	r, _ := newTestRecorder(t, func(context.Context) { calls++ })

	// no Append expectation: the mock fails the test if it is called
	r.RecordChange(context.Background(), "plan-1", models.EntityExpense, "e1", models.OperationUpdate, []byte("{oops"), "")
	r.RecordChange(context.Background(), "plan-1", models.EntityExpense, "e1", models.OperationUpdate, make(chan int), "")

	assert.Zero(t, calls)
}

func TestChangeRecorder_AppendFailureIsSwallowed(t *testing.T) {
	calls := 0
	r, changelog := newTestRecorder(t, func(context.Context) { calls++ })
	changelog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	assert.NotPanics(t, func() {
		r.RecordChange(context.Background(), "plan-1", models.EntityGoal, "g1", models.OperationUpdate, map[string]string{"id": "g1"}, "")
	})
	assert.Zero(t, calls)
}
