package service

import (
	"context"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

type changeLogService struct {
	repository store.RemoteChangeLogRepository

	logger *logger.Logger
}

func NewChangeLogService(repository store.RemoteChangeLogRepository, logger *logger.Logger) ChangeLogService {
	return &changeLogService{
		repository: repository,
		logger:     logger,
	}
}

func (c *changeLogService) Push(ctx context.Context, ownerID string, request models.ChangeLogUpsertRequest) error {
	if ownerID == "" {
		return ErrNoOwnerID
	}

	entries := make([]models.RemoteChangeLogEntry, len(request.Entries))
	for i, entry := range request.Entries {
		entry.Timestamp = models.TruncateTimestamp(entry.Timestamp)
		entries[i] = entry
	}

	if err := c.repository.Upsert(ctx, ownerID, entries); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "changeLogService.Push").
		Str("owner_id", ownerID).
		Int("count", len(entries)).
		Msg("changelog batch stored")
	return nil
}

func (c *changeLogService) Pull(ctx context.Context, request models.ChangeLogPullRequest) ([]models.RemoteChangeLogEntry, error) {
	if request.OwnerID == "" {
		return nil, ErrNoOwnerID
	}
	return c.repository.GetSince(ctx, request)
}

func (c *changeLogService) Ping(ctx context.Context) error {
	return c.repository.Ping(ctx)
}
