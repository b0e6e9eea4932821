// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the account service REST API.
//
// [AccountsAdapter] hides the transport from callers. Non-2xx responses are
// decoded from the service's JSON error body and mapped to the sentinel
// errors in errors.go, so callers can use [errors.Is] (e.g.
// [ErrAccountNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/account-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AccountsAdapter talks to a running account service.
type AccountsAdapter interface {
	// List returns all accounts ordered by id.
	List(ctx context.Context) ([]models.Account, error)

	// Get returns the account with the given id or [ErrAccountNotFound].
	Get(ctx context.Context, id int64) (models.Account, error)

	// Create stores acc and returns it with the server-assigned id together
	// with the Location of the new resource.
	Create(ctx context.Context, acc models.Account) (models.Account, string, error)

	// Update replaces the account identified by id.
	Update(ctx context.Context, id int64, acc models.Account) (models.Account, error)

	// Delete removes the account. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	// Health reports the liveness status string of the service.
	Health(ctx context.Context) (string, error)
}
