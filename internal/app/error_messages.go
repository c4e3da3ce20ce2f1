// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the changelog server
// and the client.
//
// Server Msg* constants are written into HTTP error bodies. Client Msg*
// constants are what [service.UserMessage] shows in place of raw errors, so
// that no internal or cryptographic detail ever reaches the user.
package app

// Server responses.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database failed in a way
	// that may succeed on retry.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgTokenIsExpired is returned when a bearer token has passed its expiry.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or is missing.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoOwnerIDProvided is returned when a handler runs without an owner
	// id in the request context.
	MsgNoOwnerIDProvided = "no owner ID provided"

	MsgScopeIDRequired = "scope_id is required"
	MsgInvalidSince    = "since must be a UTC timestamp"
	MsgBatchTooLarge   = "too many entries in one request"
)

// Client messages.
const (
	MsgVaultLocked          = "Your vault is locked. Enter your password to continue."
	MsgWrongPassword        = "The password is incorrect or the data is damaged."
	MsgVaultCorrupted       = "The vault file is damaged and cannot be opened."
	MsgVaultUpgradeRequired = "This vault was created by a newer version. Please update the app."
	MsgVaultNotEnabled      = "Encryption is not enabled."
	MsgVaultAlreadyEnabled  = "Encryption is already enabled."
	MsgPasswordRequired     = "A password is needed to sync encrypted data."
	MsgOffline              = "You are offline. Changes will sync when the connection returns."
	MsgSyncUnauthorized     = "Sync access was denied. Please sign in again."
	MsgSyncRejected         = "The sync server rejected the changes."
	MsgSyncUnavailable      = "The sync server is temporarily unavailable."
	MsgRemoteNotConfigured  = "Cloud sync is not configured."
	MsgNoActivePlan         = "Open a plan before making changes."
	MsgUnexpected           = "Something went wrong. Please try again."
)
