// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a JSON object
	// that decodes into an account, including bodies over the size limit.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrUnsupportedMediaType is returned when a request carrying a body is
	// not declared as application/json.
	ErrUnsupportedMediaType = errors.New("Content-Type must be application/json")

	// ErrInvalidAccountID is returned when the {id} path segment is not a
	// positive integer. Such ids cannot exist, so they are reported as 404.
	ErrInvalidAccountID = errors.New("account id must be a positive integer")

	// ErrRouteNotFound is returned for paths no route is registered for.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned when the path exists but does not
	// accept the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrTooManyRequests is returned when a client exceeds the rate limit.
	ErrTooManyRequests = errors.New("rate limit exceeded")
)
