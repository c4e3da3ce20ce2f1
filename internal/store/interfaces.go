package store

import (
	"context"

	"github.com/MKhiriev/go-budget-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RemoteChangeLogRepository is the server-side changelog table shared by
// every device of one owner.
type RemoteChangeLogRepository interface {
	// Upsert writes entries keyed by id. Replaying the same batch leaves the
	// table unchanged, so clients may retry freely.
	Upsert(ctx context.Context, ownerID string, entries []models.RemoteChangeLogEntry) error

	// GetSince returns entries of one owner and scope with timestamp strictly
	// after request.Since, oldest first.
	GetSince(ctx context.Context, request models.ChangeLogPullRequest) ([]models.RemoteChangeLogEntry, error)

	// Ping reports whether the database is reachable.
	Ping(ctx context.Context) error
}
