// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of request decoding and the auth middleware. They are
// logged, never written to the client.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoOwnerInContext means a changelog route was reached without the
	// auth middleware having stored an owner id.
	ErrNoOwnerInContext = errors.New("no owner id in request context")

	ErrInvalidJSON  = errors.New("invalid JSON was passed")
	ErrInvalidSince = errors.New("invalid since parameter")
)
