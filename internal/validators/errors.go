package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrInvalidEntryID    = errors.New("invalid changelog entry id")
	ErrInvalidScopeID    = errors.New("invalid scope id")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrEmptyPayload      = errors.New("payload is required for create and update")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrEmptyEntries      = errors.New("entries list cannot be empty")
	ErrLengthMismatch    = errors.New("length does not match number of entries")
	ErrBatchTooLarge     = errors.New("too many entries in one batch")
	ErrDuplicateEntryID  = errors.New("duplicate entry id in batch")
)
