package http

import (
	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/metrics"
	"github.com/MKhiriev/account-service/internal/service"
	"github.com/MKhiriev/account-service/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics.Metrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil m gets a fresh, private
// metrics registry.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
