package service

import (
	"context"

	"github.com/MKhiriev/go-budget-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock

// ChangeLogService is the server side of the remote changelog table. Every
// call is confined to the owner carried by the caller's token.
type ChangeLogService interface {
	// Push upserts the batch keyed by entry id. Replays are harmless.
	Push(ctx context.Context, ownerID string, request models.ChangeLogUpsertRequest) error

	// Pull returns the owner's entries of one scope strictly after
	// request.Since, oldest first.
	Pull(ctx context.Context, request models.ChangeLogPullRequest) ([]models.RemoteChangeLogEntry, error)

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
