package service

import (
	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/store"
	"github.com/MKhiriev/account-service/models"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices builds the service layer. The account service is wrapped with
// payload validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		logger.Err(err).Str("func", "service.NewServices").Msg("error creating app info service")
		return nil, err
	}

	accountService := NewAccountValidationService().Wrap(
		NewAccountService(storages.AccountRepository, logger),
	)

	return &Services{
		AccountService: accountService,
		AppInfoService: appInfoService,
	}, nil
}
