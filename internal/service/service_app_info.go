package service

import (
	"context"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
)

// AppName is the service name reported on the index endpoint.
const AppName = "Account REST API Service"

// Paths lists the top-level resources advertised on the index endpoint.
var Paths = []string{"/accounts", "/health", "/metrics"}

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	paths := make([]string, len(Paths))
	copy(paths, Paths)

	return models.AppInfo{
		Name:    AppName,
		Version: s.appVersion,
		Paths:   paths,
		Build:   s.build.JSON(),
	}
}
