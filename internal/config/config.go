// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// account service. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the advertised version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, transport security, and timeout settings
	// for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log controls the verbosity and destination of structured logs.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported on the index endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the target database.
	// "postgres://" and "postgresql://" URLs use PostgreSQL via pgx;
	// "sqlite://<path>", "file:<path>" and ":memory:" use SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// AutoMigrate applies embedded schema migrations on startup.
	// A pointer so that an explicit false survives merging with defaults.
	// Env: STORAGE_DB_AUTO_MIGRATE
	AutoMigrate *bool `env:"AUTO_MIGRATE"`
}

// Server holds network and transport settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ForceHTTPS redirects plain-HTTP requests to their HTTPS equivalent.
	// Off in development and tests.
	// Env: SERVER_FORCE_HTTPS
	ForceHTTPS bool `env:"FORCE_HTTPS"`

	// TLSCertFile and TLSKeyFile enable TLS termination in-process when both
	// are set.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	// RateLimit is the number of requests allowed per minute per client IP.
	// Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, sends logs to a size-rotated file instead of stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults applied after all sources are merged.
const (
	DefaultDSN            = "sqlite://accounts.db"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultVersion        = "1.0"
	DefaultLogLevel       = "info"
)

// MigrateOnStart reports whether embedded migrations should run at startup.
// Unset means yes.
func (db DB) MigrateOnStart() bool {
	return db.AutoMigrate == nil || *db.AutoMigrate
}

// TLSEnabled reports whether both certificate and key are configured.
func (s Server) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (a .env file is loaded first when present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// applyDefaults fills zero-valued fields with their defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// Redacted returns a copy of cfg that is safe to log: the password in the
// database DSN is masked.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	cfg.Storage.DB.DSN = redactDSN(cfg.Storage.DB.DSN)
	return cfg
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		if strings.Contains(dsn, "@") {
			return "xxxxx"
		}
		return dsn
	}
	return u.Redacted()
}
