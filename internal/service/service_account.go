package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/store"
	"github.com/MKhiriev/account-service/models"
)

type accountService struct {
	repository store.AccountRepository
	now        func() time.Time

	logger *logger.Logger
}

func NewAccountService(repository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, acc models.Account) (models.Account, error) {
	acc.ID = 0
	if acc.DateJoined.IsZero() {
		acc.DateJoined = models.NewDate(s.now().UTC())
	}

	created, err := s.repository.Create(ctx, acc)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountService.CreateAccount").Msg("error creating account")
		return models.Account{}, err
	}

	logger.FromContext(ctx).Info().Str("func", "accountService.CreateAccount").Int64("account_id", created.ID).Msg("account created")
	return created, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	if id <= 0 {
		return models.Account{}, ErrInvalidAccountID
	}

	return s.repository.Get(ctx, id)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.repository.List(ctx)
}

func (s *accountService) UpdateAccount(ctx context.Context, id int64, acc models.Account) (models.Account, error) {
	if id <= 0 {
		return models.Account{}, ErrInvalidAccountID
	}
	acc.ID = id

	updated, err := s.repository.Update(ctx, acc)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "accountService.UpdateAccount").Int64("account_id", id).Msg("error updating account")
		}
		return models.Account{}, err
	}

	return updated, nil
}

// DeleteAccount treats a missing row as already deleted.
func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAccountID
	}

	err := s.repository.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		logger.FromContext(ctx).Debug().Str("func", "accountService.DeleteAccount").Int64("account_id", id).Msg("account already absent")
		return nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "accountService.DeleteAccount").Int64("account_id", id).Msg("error deleting account")
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "accountService.DeleteAccount").Int64("account_id", id).Msg("account deleted")
	return nil
}
