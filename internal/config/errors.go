package config

import "errors"

// Validation errors returned by validate when the merged configuration
// cannot be used to start the service.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a DSN with an unsupported scheme).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a TLS certificate without a key or a negative rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClientConfigs indicates invalid client settings
	// (for example, missing server address).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
