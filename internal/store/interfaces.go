package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/account-service/models"
)

// AccountRepository persists accounts in the "accounts" table.
//
// Implementations map a missing row to [ErrAccountNotFound], rejected values
// to [ErrInvalidAccountData] and transient driver failures to
// [ErrDatabaseUnavailable].
type AccountRepository interface {
	// Create inserts acc, ignoring acc.ID, and returns the stored row.
	Create(ctx context.Context, acc models.Account) (models.Account, error)

	// Get returns the account with the given id.
	Get(ctx context.Context, id int64) (models.Account, error)

	// List returns every account ordered by id. The slice is empty, never
	// nil, when the table has no rows.
	List(ctx context.Context) ([]models.Account, error)

	// Update replaces all fields of the account identified by acc.ID. A zero
	// acc.DateJoined keeps the stored date.
	Update(ctx context.Context, acc models.Account) (models.Account, error)

	// Delete removes the account with the given id. It returns
	// [ErrAccountNotFound] when no row was deleted.
	Delete(ctx context.Context, id int64) error
}
