// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-vault/models"
)

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Requirements that only one binary has are checked by the
// client and server views.
func (cfg *StructuredConfig) validate() error {
	var err error
	if cfg.Workers.MaxAttempts < 0 {
		err = errors.Join(err, fmt.Errorf("%w: max attempts must not be negative", ErrInvalidWorkerConfigs))
	}
	if cfg.Vault.KDFIterations < 0 {
		err = errors.Join(err, fmt.Errorf("%w: kdf iterations must not be negative", ErrInvalidVaultConfigs))
	}
	return err
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.SyncInterval <= 0 || w.DebounceDelay <= 0 || w.RetryBaseDelay <= 0 || w.MaxAttempts <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if w.RetryMaxDelay < w.RetryBaseDelay {
		return fmt.Errorf("%w: retry max delay is below the base delay", ErrInvalidWorkerConfigs)
	}

	if cfg.Vault.IdleTimeout <= 0 {
		return ErrInvalidVaultConfigs
	}

	if cfg.App.StorageMode != "" {
		if _, err := models.ParseStorageMode(cfg.App.StorageMode); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
