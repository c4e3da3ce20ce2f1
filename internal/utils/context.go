// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the server:
// typed context keys, JSON response writing, the resty client constructor,
// JWT issuing and validation, and UUIDv7 generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey stores the owner id extracted from a verified bearer token.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext returns the owner id stored by the auth middleware.
// ok is false when the value is missing, empty, or of an unexpected type.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	return ownerID, ok && ownerID != ""
}
