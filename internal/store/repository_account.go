package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
)

// accountRepository is the database/sql implementation of
// [AccountRepository]. It works unchanged on PostgreSQL and SQLite; the
// embedded [*DB] supplies the placeholder style and error classifier.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database failures are logged with the request's trace id.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var acc models.Account

	err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.Address, &acc.PhoneNumber, &acc.DateJoined)
	if err != nil {
		return models.Account{}, err
	}

	return acc, nil
}

func (r *accountRepository) Create(ctx context.Context, acc models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.builder, acc)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to create query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to insert account")
		return models.Account{}, r.mapError(err)
	}

	log.Debug().Str("func", "accountRepository.Create").Int64("account_id", created.ID).Msg("account created")
	return created, nil
}

func (r *accountRepository) Get(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Get").Int64("account_id", id).Msg("failed to create query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	acc, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := r.mapError(err)
		if !errors.Is(mapped, ErrAccountNotFound) {
			log.Err(err).Str("func", "accountRepository.Get").Int64("account_id", id).Msg("failed to get account")
		}
		return models.Account{}, mapped
	}

	return acc, nil
}

// List returns all accounts ordered by id.
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("failed to execute query for listing accounts")
		return nil, r.mapError(err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 50)

	for rows.Next() {
		acc, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "accountRepository.List").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, acc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "accountRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, acc models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.builder, acc)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Int64("account_id", acc.ID).Msg("failed to create query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := r.mapError(err)
		if !errors.Is(mapped, ErrAccountNotFound) {
			log.Err(err).Str("func", "accountRepository.Update").Int64("account_id", acc.ID).Msg("failed to update account")
		}
		return models.Account{}, mapped
	}

	return updated, nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Int64("account_id", id).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Int64("account_id", id).Msg("failed to delete account")
		return r.mapError(err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
