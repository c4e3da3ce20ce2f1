// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Operation is the kind of mutation a [ChangeLogEntry] records.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// ParseOperation validates a wire string and returns the matching [Operation].
func ParseOperation(raw string) (Operation, error) {
	switch op := Operation(raw); op {
	case OperationCreate, OperationUpdate, OperationDelete:
		return op, nil
	default:
		return "", fmt.Errorf("unknown operation %q", raw)
	}
}

// ChangeLogEntry is an append-only record of one entity mutation in the
// local store. Entries are immutable once written; Synced is the only field
// the sync engine flips after a successful push.
type ChangeLogEntry struct {
	// ID is a client-generated UUIDv7 and doubles as the remote upsert key.
	ID string `json:"id"`

	// ScopeID is the plan the entity belongs to.
	ScopeID string `json:"scopeId"`

	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	Operation  Operation  `json:"operation"`

	// Timestamp is the moment the mutation happened, millisecond precision, UTC.
	Timestamp time.Time `json:"timestamp"`

	// Payload is the JSON snapshot of the entity after the mutation.
	// It is nil for deletes.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Name is an optional human-readable label of the entity (for history views).
	Name string `json:"name,omitempty"`

	// Synced reports whether the entry has already been pushed to the remote.
	Synced bool `json:"synced"`
}

// RemoteChangeLogEntry is a single row of the remote changelog table.
// Payload holds either the plain entity JSON or, when IsEncrypted is set,
// a serialized [EncryptedPayload].
type RemoteChangeLogEntry struct {
	ID          string    `json:"id"`
	ScopeID     string    `json:"scope_id"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id"`
	Operation   string    `json:"operation"`
	Timestamp   time.Time `json:"timestamp"`
	Payload     *string   `json:"payload"`
	IsEncrypted bool      `json:"is_encrypted"`
}

// ChangeLogUpsertRequest is the body of the batch upsert call to the remote.
type ChangeLogUpsertRequest struct {
	Entries []RemoteChangeLogEntry `json:"entries"`
	Length  int                    `json:"length"`
}

// ChangeLogPullResponse is the body returned by the remote for a pull query.
type ChangeLogPullResponse struct {
	Entries []RemoteChangeLogEntry `json:"entries"`
	Length  int                    `json:"length"`
}

// ChangeLogPullRequest filters a pull query against the remote table.
type ChangeLogPullRequest struct {
	OwnerID string
	ScopeID string
	Since   time.Time
}
