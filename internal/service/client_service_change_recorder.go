package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

var errInvalidPayloadJSON = errors.New("payload is not valid JSON")

// IDGenerator issues changelog entry ids. utils.UUIDGenerator satisfies it.
type IDGenerator interface {
	Generate() string
}

type changeRecorder struct {
	changelog store.ChangeLogRepository
	ids       IDGenerator
	now       func() time.Time

	// onRecorded, if set, runs after every entry that was written.
	onRecorded func(ctx context.Context)

	logger *logger.Logger
}

// NewChangeRecorder builds the [ChangeRecorder]. onRecorded, if non-nil, is
// called after each successful write; the autosave path passes
// SyncEngine.DebouncedSync here.
func NewChangeRecorder(changelog store.ChangeLogRepository, ids IDGenerator, onRecorded func(ctx context.Context), logger *logger.Logger) ChangeRecorder {
	return &changeRecorder{
		changelog:  changelog,
		ids:        ids,
		now:        models.Now,
		onRecorded: onRecorded,
		logger:     logger,
	}
}

func (r *changeRecorder) RecordChange(ctx context.Context, scopeID string, entityType models.EntityType, entityID string, operation models.Operation, payload any, name string) {
	log := logger.FromContext(ctx)

	entry := models.ChangeLogEntry{
		ID:         r.ids.Generate(),
		ScopeID:    scopeID,
		EntityType: entityType,
		EntityID:   entityID,
		Operation:  operation,
		Timestamp:  r.now(),
		Name:       name,
	}

	if operation != models.OperationDelete && payload != nil {
		raw, err := marshalPayload(payload)
		if err != nil {
			log.Err(err).
				Str("func", "changeRecorder.RecordChange").
				Str("entity_type", string(entityType)).
				Str("entity_id", entityID).
				Msg("failed to encode entity snapshot")
			return
		}
		entry.Payload = raw
	}

	if err := r.changelog.Append(ctx, entry); err != nil {
		log.Err(err).
			Str("func", "changeRecorder.RecordChange").
			Str("scope_id", scopeID).
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to record change")
		return
	}

	if r.onRecorded != nil {
		r.onRecorded(ctx)
	}
}

func marshalPayload(payload any) (json.RawMessage, error) {
	switch p := payload.(type) {
	case json.RawMessage:
		if !json.Valid(p) {
			return nil, errInvalidPayloadJSON
		}
		return p, nil
	case []byte:
		if !json.Valid(p) {
			return nil, errInvalidPayloadJSON
		}
		return json.RawMessage(p), nil
	default:
		return json.Marshal(payload)
	}
}
