// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

var supportedDSNPrefixes = []string{
	"postgres://",
	"postgresql://",
	"sqlite://",
	"file:",
	":memory:",
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if !hasSupportedScheme(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
	}

	if (cfg.Server.TLSCertFile == "") != (cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("%w: TLS certificate and key must be set together", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}

func hasSupportedScheme(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
