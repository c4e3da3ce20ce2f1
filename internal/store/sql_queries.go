package store

const (
	upsertRemoteChangeLogEntry = `
		INSERT INTO changelog (
			id,
			owner_id,
			scope_id,
			entity_type,
			entity_id,
			operation,
			timestamp,
			payload,
			is_encrypted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			scope_id     = excluded.scope_id,
			entity_type  = excluded.entity_type,
			entity_id    = excluded.entity_id,
			operation    = excluded.operation,
			timestamp    = excluded.timestamp,
			payload      = excluded.payload,
			is_encrypted = excluded.is_encrypted,
			received_at  = NOW()
		WHERE changelog.owner_id = excluded.owner_id;`

	remoteChangeLogColumns = "id, scope_id, entity_type, entity_id, operation, timestamp, payload, is_encrypted"
)
