package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/models"
)

// Field name constants restrict Validate to a subset of checks.
const (
	FieldOwnerID    = "owner_id"
	FieldEntryID    = "id"
	FieldScopeID    = "scope_id"
	FieldEntityType = "entity_type"
	FieldEntityID   = "entity_id"
	FieldOperation  = "operation"
	FieldTimestamp  = "timestamp"
	FieldPayload    = "payload"

	// FieldEntries validates every entry of an upsert batch.
	FieldEntries = "entries"

	// FieldLength checks the declared batch length against the entries.
	FieldLength = "length"
)

// MaxBatchSize caps the number of entries of one upsert request.
const MaxBatchSize = 1000

// ChangeLogValidator implements [Validator] for the remote changelog wire
// types: RemoteChangeLogEntry, ChangeLogUpsertRequest and
// ChangeLogPullRequest. Value and pointer forms are both accepted.
type ChangeLogValidator struct {
}

func NewChangeLogValidator() Validator {
	return &ChangeLogValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty every
// check for that type runs. Returns ErrUnsupportedType for any other type.
func (v *ChangeLogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteChangeLogEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.RemoteChangeLogEntry:
		return v.validateEntry(ctx, *value, fields...)
	case models.ChangeLogUpsertRequest:
		return v.validateUpsertRequest(ctx, value, fields...)
	case *models.ChangeLogUpsertRequest:
		return v.validateUpsertRequest(ctx, *value, fields...)
	case models.ChangeLogPullRequest:
		return v.validatePullRequest(ctx, value, fields...)
	case *models.ChangeLogPullRequest:
		return v.validatePullRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ChangeLogValidator) validateEntry(ctx context.Context, entry models.RemoteChangeLogEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldScopeID, FieldEntityType, FieldEntityID, FieldOperation, FieldTimestamp, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if entry.ID == "" {
				return ErrInvalidEntryID
			}
		case FieldScopeID:
			if entry.ScopeID == "" {
				return ErrInvalidScopeID
			}
		case FieldEntityType:
			if _, err := models.ParseEntityType(entry.EntityType); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEntityType, err)
			}
		case FieldEntityID:
			if entry.EntityID == "" {
				return ErrInvalidEntityID
			}
		case FieldOperation:
			if _, err := models.ParseOperation(entry.Operation); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
			}
		case FieldTimestamp:
			if entry.Timestamp.IsZero() {
				return ErrInvalidTimestamp
			}
		case FieldPayload:
			if err := validatePayload(entry); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload requires a payload for create and update. A plain payload
// must be a JSON object; an encrypted one must be a complete envelope.
func validatePayload(entry models.RemoteChangeLogEntry) error {
	if entry.Payload == nil {
		if entry.Operation != string(models.OperationDelete) {
			return ErrEmptyPayload
		}
		if entry.IsEncrypted {
			return fmt.Errorf("%w: encrypted flag without payload", ErrInvalidPayload)
		}
		return nil
	}

	raw := []byte(*entry.Payload)
	if entry.IsEncrypted {
		var envelope models.EncryptedPayload
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if envelope.IV == "" || envelope.Ciphertext == "" || envelope.Salt == "" {
			return fmt.Errorf("%w: incomplete encrypted envelope", ErrInvalidPayload)
		}
		return nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

func (v *ChangeLogValidator) validateUpsertRequest(ctx context.Context, request models.ChangeLogUpsertRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldEntries}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if request.Length != len(request.Entries) {
				return ErrLengthMismatch
			}
		case FieldEntries:
			if len(request.Entries) == 0 {
				return ErrEmptyEntries
			}
			if len(request.Entries) > MaxBatchSize {
				return ErrBatchTooLarge
			}
			seen := make(map[string]struct{}, len(request.Entries))
			for i, entry := range request.Entries {
				if err := v.validateEntry(ctx, entry); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[entry.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateEntryID)
				}
				seen[entry.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChangeLogValidator) validatePullRequest(ctx context.Context, request models.ChangeLogPullRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldScopeID}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if request.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldScopeID:
			if request.ScopeID == "" {
				return ErrInvalidScopeID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
