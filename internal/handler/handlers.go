package handler

import (
	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/handler/http"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/metrics"
	"github.com/MKhiriev/account-service/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
