// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// account service handlers and the command-line client.
//
// The Msg* constants are human-readable strings written into response
// bodies or printed by the client.
package app

const (
	// MsgServiceUnavailable replaces the detail of database outages so that
	// driver errors never reach clients.
	MsgServiceUnavailable = "service is temporarily unavailable, retry later"

	// MsgInvalidAccountData replaces the detail of rejected writes so that
	// driver errors never reach clients.
	MsgInvalidAccountData = "account data rejected by storage"

	// MsgInvalidGzipData is returned when a request declares gzip encoding
	// but the body is not a gzip stream.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgHealthy is the liveness status reported by GET /health.
	MsgHealthy = "OK"

	// MsgAccountDeleted is printed by the client after a delete.
	MsgAccountDeleted = "account deleted"
)
