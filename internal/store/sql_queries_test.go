// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_upsertRemoteChangeLogEntry_KeepsOwnerIsolation(t *testing.T) {
	q := strings.ToLower(upsertRemoteChangeLogEntry)

	assert.Contains(t, q, "insert into changelog")
	assert.Contains(t, q, "on conflict (id) do update")
	assert.Contains(t, q, "where changelog.owner_id = excluded.owner_id")
	// owner_id is never overwritten on conflict
	assert.NotContains(t, q, "owner_id     = excluded.owner_id")
	assert.Equal(t, 9, strings.Count(q, "$"))
}

func Test_remoteChangeLogColumns_MatchScanOrder(t *testing.T) {
	cols := strings.Split(remoteChangeLogColumns, ", ")
	assert.Equal(t, []string{"id", "scope_id", "entity_type", "entity_id", "operation", "timestamp", "payload", "is_encrypted"}, cols)
}
