package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/account-service/internal/adapter"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/mock"
	"github.com/MKhiriev/account-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockAccountsAdapter, *bytes.Buffer) {
	t.Helper()

	accounts := mock.NewMockAccountsAdapter(gomock.NewController(t))
	var out bytes.Buffer
	return NewApp(accounts, &out, logger.Nop()), accounts, &out
}

// ─────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────

func TestRun_NoCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	assert.ErrorIs(t, a.Run(context.Background(), nil), ErrNoCommand)
}

func TestRun_UnknownCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	assert.ErrorIs(t, a.Run(context.Background(), []string{"frobnicate"}), ErrUnknownCommand)
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func TestRun_List(t *testing.T) {
	a, accounts, out := newTestApp(t)
	accounts.EXPECT().List(gomock.Any()).Return([]models.Account{{ID: 1, Name: "Jane"}}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"list"}))

	var got []models.Account
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Jane", got[0].Name)
}

func TestRun_Get(t *testing.T) {
	a, accounts, out := newTestApp(t)
	accounts.EXPECT().Get(gomock.Any(), int64(4)).Return(models.Account{ID: 4, Name: "Jane"}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"get", "4"}))

	assert.Contains(t, out.String(), `"id": 4`)
}

func TestRun_GetPropagatesAdapterError(t *testing.T) {
	a, accounts, _ := newTestApp(t)
	accounts.EXPECT().Get(gomock.Any(), int64(4)).
		Return(models.Account{}, fmt.Errorf("%w: gone", adapter.ErrAccountNotFound))

	assert.ErrorIs(t, a.Run(context.Background(), []string{"get", "4"}), adapter.ErrAccountNotFound)
}

func TestRun_IDErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "get without id", args: []string{"get"}, wantErr: ErrMissingID},
		{name: "get non-numeric", args: []string{"get", "abc"}, wantErr: ErrInvalidID},
		{name: "delete zero", args: []string{"delete", "0"}, wantErr: ErrInvalidID},
		{name: "update negative", args: []string{"update", "-3", "-name", "x"}, wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(t)

			assert.ErrorIs(t, a.Run(context.Background(), tt.args), tt.wantErr)
		})
	}
}

func TestRun_Create(t *testing.T) {
	a, accounts, out := newTestApp(t)

	want := models.Account{
		Name:        "Jane",
		Email:       "jane@x.com",
		Address:     "1 Main St",
		PhoneNumber: "555-1234",
		DateJoined:  models.NewDate(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)),
	}
	created := want
	created.ID = 12
	accounts.EXPECT().Create(gomock.Any(), want).Return(created, "http://localhost:8080/accounts/12", nil)

	err := a.Run(context.Background(), []string{
		"create",
		"-name", "Jane",
		"-email", "jane@x.com",
		"-address", "1 Main St",
		"-phone", "555-1234",
		"-date", "2024-05-06",
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"id": 12`)
	assert.Contains(t, out.String(), `"date_joined": "2024-05-06"`)
}

func TestRun_CreateBadFlags(t *testing.T) {
	a, _, _ := newTestApp(t)

	assert.Error(t, a.Run(context.Background(), []string{"create", "-unknown", "x"}))
	assert.Error(t, a.Run(context.Background(), []string{"create", "-date", "yesterday"}))
}

func TestRun_Update(t *testing.T) {
	a, accounts, out := newTestApp(t)
	accounts.EXPECT().Update(gomock.Any(), int64(3), models.Account{Name: "Janet"}).
		Return(models.Account{ID: 3, Name: "Janet"}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"update", "3", "-name", "Janet"}))

	assert.Contains(t, out.String(), `"name": "Janet"`)
}

func TestRun_Delete(t *testing.T) {
	a, accounts, out := newTestApp(t)
	accounts.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)

	require.NoError(t, a.Run(context.Background(), []string{"delete", "9"}))

	assert.Equal(t, "account deleted\n", out.String())
}

func TestRun_Health(t *testing.T) {
	a, accounts, out := newTestApp(t)
	accounts.EXPECT().Health(gomock.Any()).Return("OK", nil)

	require.NoError(t, a.Run(context.Background(), []string{"health"}))

	assert.JSONEq(t, `{"status":"OK"}`, out.String())
}
