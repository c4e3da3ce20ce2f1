package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-vault/internal/app"
	"github.com/MKhiriev/go-budget-vault/internal/service"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/internal/validators"
	"github.com/MKhiriev/go-budget-vault/models"
)

const pushBody = `{"entries":[{"id":"c1","scope_id":"plan-1","entity_type":"expense","entity_id":"e1",` +
	`"operation":"create","timestamp":"2026-03-01T10:00:00.000Z","payload":"{\"id\":\"e1\"}","is_encrypted":false}],"length":1}`

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func TestPushChangeLog_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.changelog.EXPECT().Push(gomock.Any(), testOwner, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, request models.ChangeLogUpsertRequest) error {
			require.Len(t, request.Entries, 1)
			entry := request.Entries[0]
			assert.Equal(t, "c1", entry.ID)
			assert.Equal(t, "plan-1", entry.ScopeID)
			require.NotNil(t, entry.Payload)
			assert.JSONEq(t, `{"id":"e1"}`, *entry.Payload)
			assert.Equal(t, 1, request.Length)
			return nil
		})

	rec := f.do(http.MethodPut, changelogRoute, pushBody, bearer(t, testOwner, time.Hour))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPushChangeLog_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation failure",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrLengthMismatch),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "batch too large",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrBatchTooLarge),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    app.MsgBatchTooLarge,
		},
		{
			name:       "transient database failure",
			serviceErr: fmt.Errorf("%w: %w: broken pipe", store.ErrExecutingQuery, store.ErrTransient),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    app.MsgServiceUnavailable,
		},
		{
			name:       "unknown failure is not echoed",
			serviceErr: fmt.Errorf("pq: relation changelog does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.changelog.EXPECT().Push(gomock.Any(), testOwner, gomock.Any()).Return(tt.serviceErr)

			rec := f.do(http.MethodPut, changelogRoute, pushBody, bearer(t, testOwner, time.Hour))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec.Body.Bytes()))
		})
	}
}

func TestPushChangeLog_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPut, changelogRoute, `{"entries":`, bearer(t, testOwner, time.Hour))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeError(t, rec.Body.Bytes()))
}

func TestChangeLogRoutes_RequireValidToken(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantMsg       string
	}{
		{"no header", "", app.MsgTokenIsExpiredOrInvalid},
		{"not a bearer", "Basic dXNlcjpwYXNz", app.MsgTokenIsExpiredOrInvalid},
		{"garbage token", "Bearer not.a.jwt", app.MsgTokenIsExpiredOrInvalid},
		{"expired", "", app.MsgTokenIsExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			authorization := tt.authorization
			if tt.name == "expired" {
				authorization = bearer(t, testOwner, -time.Minute)
			}

			for _, method := range []string{http.MethodPut, http.MethodGet} {
				rec := f.do(method, changelogRoute+"?scope_id=plan-1", pushBody, authorization)
				assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
				assert.Equal(t, tt.wantMsg, decodeError(t, rec.Body.Bytes()), method)
			}
		})
	}
}

func TestPullChangeLog_Success(t *testing.T) {
	f := newHandlerFixture(t)
	payload := `{"id":"e1"}`
	since := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	f.changelog.EXPECT().Pull(gomock.Any(), models.ChangeLogPullRequest{
		OwnerID: testOwner,
		ScopeID: "plan-1",
		Since:   since,
	}).Return([]models.RemoteChangeLogEntry{{
		ID:         "c2",
		ScopeID:    "plan-1",
		EntityType: "expense",
		EntityID:   "e1",
		Operation:  "update",
		Timestamp:  since.Add(time.Second),
		Payload:    &payload,
	}}, nil)

	rec := f.do(http.MethodGet, changelogRoute+"?scope_id=plan-1&since=2026-03-01T10:00:00.000Z", "", bearer(t, testOwner, time.Hour))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.ChangeLogPullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Length)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "c2", resp.Entries[0].ID)
}

func TestPullChangeLog_EmptyResultIsAnArray(t *testing.T) {
	f := newHandlerFixture(t)
	f.changelog.EXPECT().Pull(gomock.Any(), models.ChangeLogPullRequest{OwnerID: testOwner, ScopeID: "plan-1"}).Return(nil, nil)

	rec := f.do(http.MethodGet, changelogRoute+"?scope_id=plan-1", "", bearer(t, testOwner, time.Hour))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries":[],"length":0}`, rec.Body.String())
}

func TestPullChangeLog_BadQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{"missing scope", "?since=2026-03-01T10:00:00.000Z", app.MsgScopeIDRequired},
		{"unparsable since", "?scope_id=plan-1&since=yesterday", app.MsgInvalidSince},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			rec := f.do(http.MethodGet, changelogRoute+tt.query, "", bearer(t, testOwner, time.Hour))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec.Body.Bytes()))
		})
	}
}

func TestChangeLogRoute_UnknownMethodIsNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodDelete, changelogRoute, "", bearer(t, testOwner, time.Hour))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
