// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the remote changelog table.
//
// [RemoteChangeLog] decouples the sync engine from the wire protocol. The
// package ships an HTTP/REST implementation ([NewHTTPRemoteChangeLog]) that
// talks to the changelog server in cmd/server.
//
// Transport failures and HTTP status codes are mapped to the sentinels in
// errors.go so that callers decide about retries with [errors.Is]
// ([ErrUnreachable], [ErrServerUnavailable]) without knowing about HTTP.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-budget-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteChangeLog is the remote changelog table as seen by one device.
// Rows are keyed by id; the owner is implied by the bearer token.
type RemoteChangeLog interface {
	// SetToken stores the bearer token attached to every changelog request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Upsert writes entries by id. Re-sending an id overwrites the row, so a
	// retried push is harmless. An empty batch sends nothing.
	Upsert(ctx context.Context, entries []models.RemoteChangeLogEntry) error

	// FetchSince returns the rows of scopeID with timestamp strictly after
	// since, oldest first. A zero since returns the whole scope.
	FetchSince(ctx context.Context, scopeID string, since time.Time) ([]models.RemoteChangeLogEntry, error)

	// Ping checks that the remote answers its health endpoint.
	Ping(ctx context.Context) error
}
