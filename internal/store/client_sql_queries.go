// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	appendChangeLogEntry = `
		INSERT INTO changelog (
			id,
			scope_id,
			entity_type,
			entity_id,
			operation,
			timestamp,
			payload,
			name,
			synced
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING;`

	changeLogColumns = `id, scope_id, entity_type, entity_id, operation, timestamp, payload, name, synced`

	getLatestChangeLogEntry = `
		SELECT ` + changeLogColumns + `
		FROM changelog
		WHERE scope_id = ? AND entity_type = ? AND entity_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT 1;`

	getAllChangeLogEntries = `
		SELECT ` + changeLogColumns + `
		FROM changelog
		ORDER BY timestamp ASC, id ASC;`

	clearChangeLog = `DELETE FROM changelog;`

	getKV = `SELECT value FROM kv WHERE purpose = ? AND key = ?;`

	setKV = `
		INSERT INTO kv (purpose, key, value) VALUES (?, ?, ?)
		ON CONFLICT (purpose, key) DO UPDATE SET value = excluded.value;`

	// timestamps use a fixed-width layout, so string comparison is chronological
	advanceKV = `
		INSERT INTO kv (purpose, key, value) VALUES (?, ?, ?)
		ON CONFLICT (purpose, key) DO UPDATE SET value = excluded.value
		WHERE excluded.value > kv.value;`

	deleteKV = `DELETE FROM kv WHERE purpose = ? AND key = ?;`

	getVaultMeta = `SELECT enabled, salt, sealed, verifier, updated_at FROM vault_meta WHERE id = 1;`

	saveVaultMeta = `
		INSERT INTO vault_meta (id, enabled, salt, sealed, verifier, updated_at) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			enabled    = excluded.enabled,
			salt       = excluded.salt,
			sealed     = excluded.sealed,
			verifier   = excluded.verifier,
			updated_at = excluded.updated_at;`

	clearVaultMeta = `DELETE FROM vault_meta;`

	// documentTable statements; %s is a table name from the closed documentTables set
	upsertDocument = `
		INSERT INTO %s (id, plan_id, data, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			plan_id    = excluded.plan_id,
			data       = excluded.data,
			updated_at = excluded.updated_at;`
	deleteDocument  = `DELETE FROM %s WHERE id = ?;`
	clearTable      = `DELETE FROM %s;`
	getAllDocuments = `SELECT id, plan_id, data, updated_at FROM %s ORDER BY id;`

	upsertAttachment = `
		INSERT INTO attachments (id, plan_id, expense_id, name, mime_type, size, blob, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			plan_id    = excluded.plan_id,
			expense_id = excluded.expense_id,
			name       = excluded.name,
			mime_type  = excluded.mime_type,
			size       = excluded.size,
			blob       = excluded.blob,
			created_at = excluded.created_at;`
	deleteAttachment  = `DELETE FROM attachments WHERE id = ?;`
	getAllAttachments = `
		SELECT id, plan_id, expense_id, name, mime_type, size, blob, created_at
		FROM attachments
		ORDER BY id;`
)
