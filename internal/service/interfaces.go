package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/account-service/models"
)

// AccountService holds the business rules for the account resource.
type AccountService interface {
	// CreateAccount stores a new account. Any client-supplied ID is
	// discarded and a zero DateJoined becomes today's date (UTC).
	CreateAccount(ctx context.Context, acc models.Account) (models.Account, error)

	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// ListAccounts returns all accounts ordered by id.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// UpdateAccount replaces the account identified by id. The id argument
	// wins over acc.ID; a zero DateJoined keeps the stored date.
	UpdateAccount(ctx context.Context, id int64, acc models.Account) (models.Account, error)

	// DeleteAccount removes the account. Deleting an absent id succeeds.
	DeleteAccount(ctx context.Context, id int64) error
}

// AppInfoService reports static information about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
