package service

import (
	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

type Services struct {
	ChangeLogService ChangeLogService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	changelog := NewChangeLogValidationService().Wrap(NewChangeLogService(storages.ChangeLog, logger))

	return &Services{
		ChangeLogService: changelog,
		AppInfoService:   appInfo,
	}, nil
}
