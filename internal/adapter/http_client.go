package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/utils"
	"github.com/MKhiriev/account-service/models"
)

const accountsPath = "/accounts"

type httpAccountsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAccountsAdapter builds the REST implementation of [AccountsAdapter]
// from the client configuration. The address may omit the scheme, in which
// case http is assumed.
func NewHTTPAccountsAdapter(cfg config.ClientConfig, logger *logger.Logger) (AccountsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpAccountsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func accountURL(id int64) string {
	return accountsPath + "/" + strconv.FormatInt(id, 10)
}

func (a *httpAccountsAdapter) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (a *httpAccountsAdapter) Get(ctx context.Context, id int64) (models.Account, error) {
	var acc models.Account

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&acc).
		Get(accountURL(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return acc, nil
}

func (a *httpAccountsAdapter) Create(ctx context.Context, acc models.Account) (models.Account, string, error) {
	var created models.Account

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(acc).
		SetResult(&created).
		Post(accountsPath)
	if err != nil {
		return models.Account{}, "", fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, "", err
	}

	a.logger.Debug().Int64("id", created.ID).Msg("account created")
	return created, resp.Header().Get("Location"), nil
}

func (a *httpAccountsAdapter) Update(ctx context.Context, id int64, acc models.Account) (models.Account, error) {
	var updated models.Account

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(acc).
		SetResult(&updated).
		Put(accountURL(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("update account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return updated, nil
}

func (a *httpAccountsAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Delete(accountURL(id))
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *httpAccountsAdapter) Health(ctx context.Context) (string, error) {
	var health models.HealthResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return "", fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return health.Status, nil
}
