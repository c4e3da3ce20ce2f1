// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultPayloadVersion is the only snapshot format this build can restore.
const VaultPayloadVersion = 1

// VaultPayload is a complete snapshot of the local store at one instant.
// It round-trips exactly through build and restore.
type VaultPayload struct {
	Version            int               `json:"version"`
	ExportedAt         time.Time         `json:"exportedAt"`
	Plans              []Entity          `json:"plans"`
	Buckets            []Entity          `json:"buckets"`
	TaxComponents      []Entity          `json:"taxComponents"`
	Expenses           []Entity          `json:"expenses"`
	Attachments        []VaultAttachment `json:"attachments"`
	Goals              []Entity          `json:"goals"`
	Assets             []Entity          `json:"assets"`
	Liabilities        []Entity          `json:"liabilities"`
	Snapshots          []Entity          `json:"snapshots"`
	NetWorthSnapshots  []Entity          `json:"netWorthSnapshots"`
	Changelog          []ChangeLogEntry  `json:"changelog"`
	RecurringTemplates []Entity          `json:"recurringTemplates"`
	ExchangeRates      []Entity          `json:"exchangeRates"`
}

// VaultAttachment is an [Attachment] with its blob encoded as base64 text,
// so the snapshot stays plain JSON.
type VaultAttachment struct {
	ID         string    `json:"id"`
	PlanID     string    `json:"planId"`
	ExpenseID  string    `json:"expenseId,omitempty"`
	Name       string    `json:"name"`
	MimeType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	BlobBase64 string    `json:"blobBase64"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Collections returns pointers to every generic entity collection keyed by
// kind. Attachments and the changelog have their own types and are not
// included.
func (p *VaultPayload) Collections() map[EntityType]*[]Entity {
	return map[EntityType]*[]Entity{
		EntityPlan:              &p.Plans,
		EntityBucket:            &p.Buckets,
		EntityTaxComponent:      &p.TaxComponents,
		EntityExpense:           &p.Expenses,
		EntityGoal:              &p.Goals,
		EntityAsset:             &p.Assets,
		EntityLiability:         &p.Liabilities,
		EntitySnapshot:          &p.Snapshots,
		EntityNetWorthSnapshot:  &p.NetWorthSnapshots,
		EntityRecurringTemplate: &p.RecurringTemplates,
		EntityExchangeRate:      &p.ExchangeRates,
	}
}

// EncryptedPayload is the serialized AES-GCM envelope. All fields are
// standard base64.
type EncryptedPayload struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
	Salt       string `json:"salt"`
}

// VaultMeta is the persisted vault-key metadata. It survives restores.
type VaultMeta struct {
	Enabled bool
	// Salt is the base64 PBKDF2 salt of the vault key.
	Salt string
	// Sealed is the serialized EncryptedPayload of the locked dataset, empty while unlocked.
	Sealed string
	// Verifier is a known token sealed with the vault key; opening it proves
	// a password without touching the dataset.
	Verifier  string
	UpdatedAt time.Time
}

// VaultStatus summarises the vault for callers.
type VaultStatus struct {
	Enabled       bool `json:"enabled"`
	Locked        bool `json:"locked"`
	SessionActive bool `json:"sessionActive"`
}
