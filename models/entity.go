// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EntityType is the closed set of entity kinds kept in the local store.
// Each value maps to exactly one local table.
type EntityType string

const (
	EntityPlan              EntityType = "plan"
	EntityBucket            EntityType = "bucket"
	EntityTaxComponent      EntityType = "taxComponent"
	EntityExpense           EntityType = "expense"
	EntityAttachment        EntityType = "attachment"
	EntityGoal              EntityType = "goal"
	EntityAsset             EntityType = "asset"
	EntityLiability         EntityType = "liability"
	EntitySnapshot          EntityType = "snapshot"
	EntityNetWorthSnapshot  EntityType = "netWorthSnapshot"
	EntityRecurringTemplate EntityType = "recurringTemplate"
	EntityExchangeRate      EntityType = "exchangeRate"
)

// EntityTypes lists every kind in vault order.
var EntityTypes = []EntityType{
	EntityPlan,
	EntityBucket,
	EntityTaxComponent,
	EntityExpense,
	EntityAttachment,
	EntityGoal,
	EntityAsset,
	EntityLiability,
	EntitySnapshot,
	EntityNetWorthSnapshot,
	EntityRecurringTemplate,
	EntityExchangeRate,
}

// ParseEntityType validates a wire string and returns the matching [EntityType].
func ParseEntityType(raw string) (EntityType, error) {
	for _, t := range EntityTypes {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", raw)
}

// Entity is a generic local document. Domain fields live in Data and are
// opaque to the sync and vault core.
type Entity struct {
	ID        string          `json:"id"`
	PlanID    string          `json:"planId,omitempty"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Attachment is a binary file attached to an expense.
type Attachment struct {
	ID        string    `json:"id"`
	PlanID    string    `json:"planId"`
	ExpenseID string    `json:"expenseId,omitempty"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	Blob      []byte    `json:"blob"`
	CreatedAt time.Time `json:"createdAt"`
}

// StorageMode tells the sync engine where data lives.
type StorageMode string

const (
	// StorageModeLocalOnly keeps everything on the device; sync is skipped.
	StorageModeLocalOnly StorageMode = "local-only"
	// StorageModeCloud pushes payloads to the remote in plain JSON.
	StorageModeCloud StorageMode = "cloud"
	// StorageModeCloudEncrypted encrypts every pushed payload with the user's password.
	StorageModeCloudEncrypted StorageMode = "cloud-encrypted"
)

// RequiresEncryption reports whether payloads must be sealed before push.
func (m StorageMode) RequiresEncryption() bool {
	return m == StorageModeCloudEncrypted
}

// ParseStorageMode validates a stored setting. An empty value means the
// user never chose and maps to [StorageModeLocalOnly].
func ParseStorageMode(raw string) (StorageMode, error) {
	switch mode := StorageMode(raw); mode {
	case "":
		return StorageModeLocalOnly, nil
	case StorageModeLocalOnly, StorageModeCloud, StorageModeCloudEncrypted:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown storage mode %q", raw)
	}
}
