package models

import "time"

// SyncState is a state of the sync engine's state machine.
type SyncState string

const (
	SyncStateIdle         SyncState = "idle"
	SyncStateSyncing      SyncState = "syncing"
	SyncStateError        SyncState = "error"
	SyncStateRetryPending SyncState = "retry_pending"
	SyncStateOffline      SyncState = "offline"
)

// SyncStatus is a point-in-time view of the sync engine.
type SyncStatus struct {
	State        SyncState `json:"state"`
	RetryCount   int       `json:"retryCount"`
	LastSyncedAt time.Time `json:"lastSyncedAt,omitzero"`
	NextRetryAt  time.Time `json:"nextRetryAt,omitzero"`
	// LastError is a user-safe message; raw error text is never exposed here.
	LastError string `json:"lastError,omitempty"`
}

// SyncResult counts what a single completed cycle did.
type SyncResult struct {
	Pushed    int
	Pulled    int
	Applied   int
	Rejected  int
	Failed    int
	Pruned    int64
	Watermark time.Time
}
