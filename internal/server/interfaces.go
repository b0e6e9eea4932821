package server

import "context"

// Server defines the lifecycle contract for servers managed by this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests, drains in-flight ones until ctx
	// expires and releases held resources.
	Shutdown(ctx context.Context) error
}
