package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/internal/validators"
	"github.com/MKhiriev/go-budget-vault/models"
)

// ChangeLogServiceWrapper defines middleware composition for
// ChangeLogService. Implementations wrap an existing ChangeLogService to add
// behavior such as validating.
type ChangeLogServiceWrapper interface {
	Wrap(ChangeLogService) ChangeLogService // returns a decorated ChangeLogService applying additional behavior
}

type ChangeLogValidationService struct {
	inner     ChangeLogService
	validator validators.Validator
}

func NewChangeLogValidationService() ChangeLogServiceWrapper {
	return &ChangeLogValidationService{
		validator: validators.NewChangeLogValidator(),
	}
}

func (v *ChangeLogValidationService) Push(ctx context.Context, ownerID string, request models.ChangeLogUpsertRequest) error {
	if ownerID == "" {
		return ErrNoOwnerID
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Push(ctx, ownerID, request)
}

func (v *ChangeLogValidationService) Pull(ctx context.Context, request models.ChangeLogPullRequest) ([]models.RemoteChangeLogEntry, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldOwnerID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoOwnerID, err)
	}
	if err := v.validator.Validate(ctx, request, validators.FieldScopeID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Pull(ctx, request)
}

func (v *ChangeLogValidationService) Ping(ctx context.Context) error {
	return v.inner.Ping(ctx)
}

func (v *ChangeLogValidationService) Wrap(wrapper ChangeLogService) ChangeLogService {
	v.inner = wrapper
	return v
}
