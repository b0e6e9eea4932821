package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

type httpServer struct {
	server *http.Server

	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	// the write deadline must outlive the per-request timeout
	wt := writeTimeout
	if cfg.RequestTimeout >= wt {
		wt = cfg.RequestTimeout + 5*time.Second
	}

	srv := &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readTimeout,
			WriteTimeout:      wt,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
	if cfg.TLSEnabled() {
		srv.certFile = cfg.TLSCertFile
		srv.keyFile = cfg.TLSKeyFile
	}

	return srv
}

// RunServer blocks until the server is shut down. A graceful shutdown is
// not an error.
func (h *httpServer) RunServer() error {
	var err error
	if h.certFile != "" {
		h.logger.Info().Str("address", h.server.Addr).Msg("HTTPS server listening")
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	} else {
		h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")
		err = h.server.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server stopped with error")
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("error shutting down HTTP server")
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
