package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

type entityMutator struct {
	entities  store.EntityStore
	changelog store.ChangeLogRepository
	caps      Capabilities
	vault     VaultService
	recorder  ChangeRecorder
	logger    *logger.Logger
}

// NewEntityMutator builds the [EntityMutator] for the active plan. Every
// write is recorded through recorder once the local store accepted it.
func NewEntityMutator(
	entities store.EntityStore,
	changelog store.ChangeLogRepository,
	caps Capabilities,
	vault VaultService,
	recorder ChangeRecorder,
	logger *logger.Logger,
) EntityMutator {
	return &entityMutator{
		entities:  entities,
		changelog: changelog,
		caps:      caps,
		vault:     vault,
		recorder:  recorder,
		logger:    logger,
	}
}

// Put implements EntityMutator. The operation is update when the entity
// already has a live entry in the local changelog, create otherwise.
func (m *entityMutator) Put(ctx context.Context, entityType models.EntityType, payload json.RawMessage, name string) (string, error) {
	scopeID, err := m.writableScope(ctx)
	if err != nil {
		return "", err
	}

	var doc struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(payload, &doc); err != nil {
		return "", fmt.Errorf("%w: %w", store.ErrInvalidEntityPayload, err)
	}
	if doc.ID == "" {
		return "", fmt.Errorf("%w: missing id", store.ErrInvalidEntityPayload)
	}

	operation := models.OperationCreate
	latest, found, err := m.changelog.GetLatestForEntity(ctx, scopeID, entityType, doc.ID)
	if err != nil {
		return "", fmt.Errorf("read local history: %w", err)
	}
	if found && latest.Operation != models.OperationDelete {
		operation = models.OperationUpdate
	}

	if err = m.entities.Put(ctx, entityType, payload); err != nil {
		return "", err
	}
	m.recorder.RecordChange(ctx, scopeID, entityType, doc.ID, operation, payload, name)

	logger.FromContext(ctx).Debug().
		Str("func", "entityMutator.Put").
		Str("scope_id", scopeID).
		Str("entity_type", string(entityType)).
		Str("entity_id", doc.ID).
		Str("operation", string(operation)).
		Msg("entity stored")
	return doc.ID, nil
}

// Delete implements EntityMutator.
func (m *entityMutator) Delete(ctx context.Context, entityType models.EntityType, entityID, name string) error {
	scopeID, err := m.writableScope(ctx)
	if err != nil {
		return err
	}
	if entityID == "" {
		return fmt.Errorf("%w: missing id", store.ErrInvalidEntityPayload)
	}

	if err = m.entities.Delete(ctx, entityType, entityID); err != nil {
		return err
	}
	m.recorder.RecordChange(ctx, scopeID, entityType, entityID, models.OperationDelete, nil, name)
	return nil
}

// writableScope returns the active plan, refusing writes into a sealed vault
// whose tables are empty until unlock.
func (m *entityMutator) writableScope(ctx context.Context) (string, error) {
	status, err := m.vault.Status(ctx)
	if err != nil {
		return "", err
	}
	if status.Locked {
		return "", ErrVaultSealed
	}

	scopeID, err := m.caps.ActiveScopeID(ctx)
	if err != nil {
		return "", err
	}
	if scopeID == "" {
		return "", ErrNoActiveScope
	}
	return scopeID, nil
}
