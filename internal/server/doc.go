// Package server runs the account service's HTTP transport.
//
// It owns the listener lifecycle: startup with optional in-process TLS,
// signal handling, and graceful shutdown followed by releasing the
// database pool.
package server
