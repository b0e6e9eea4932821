package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Routes are registered flat on the root mux so that
// the 405 handler can match them directly.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		withSecurityPolicy,
	)
	if h.cfg.ForceHTTPS {
		router.Use(withForceHTTPS)
	}
	router.Use(withPreflight, middleware.StripSlashes, middleware.GetHead)
	if h.cfg.RateLimit > 0 {
		router.Use(withRateLimit(h.cfg.RateLimit))
	}
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.index)
	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.With(withJSONContentType).Post("/accounts", h.createAccount)
	router.Get("/accounts", h.listAccounts)
	router.Get("/accounts/{id}", h.getAccount)
	router.With(withJSONContentType).Put("/accounts/{id}", h.updateAccount)
	router.Delete("/accounts/{id}", h.deleteAccount)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
