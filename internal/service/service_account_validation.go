package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/account-service/internal/validators"
	"github.com/MKhiriev/account-service/models"
)

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}

// AccountValidationService checks incoming account payloads before they
// reach the wrapped AccountService. Read and delete calls pass through.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) CreateAccount(ctx context.Context, acc models.Account) (models.Account, error) {
	if err := v.validator.Validate(ctx, acc); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateAccount(ctx, acc)
}

func (v *AccountValidationService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	return v.inner.GetAccount(ctx, id)
}

func (v *AccountValidationService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return v.inner.ListAccounts(ctx)
}

func (v *AccountValidationService) UpdateAccount(ctx context.Context, id int64, acc models.Account) (models.Account, error) {
	if err := v.validator.Validate(ctx, acc); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateAccount(ctx, id, acc)
}

func (v *AccountValidationService) DeleteAccount(ctx context.Context, id int64) error {
	return v.inner.DeleteAccount(ctx, id)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
