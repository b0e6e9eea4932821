// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) AccountsAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPAccountsAdapter(config.ClientConfig{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func writeAPIError(t *testing.T, w http.ResponseWriter, status int, message string) {
	writeJSON(t, w, status, models.ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		TraceID: "trace-1",
	})
}

// ─────────────────────────────────────────────
// NewHTTPAccountsAdapter
// ─────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://accounts.example.com/ ", want: "https://accounts.example.com"},
		{raw: "http://127.0.0.1:9000", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAccountsAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPAccountsAdapter(config.ClientConfig{}, logger.Nop())

	require.ErrorIs(t, err, ErrInvalidAddress)
	assert.Nil(t, a)
}

// ─────────────────────────────────────────────
// Operations
// ─────────────────────────────────────────────

func TestList(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(t, w, http.StatusOK, []models.Account{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	})

	accounts, err := a.List(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "b", accounts[1].Name)
}

func TestGet(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/5", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Account{ID: 5, Name: "Jane"})
	})

	acc, err := a.Get(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), acc.ID)
	assert.Equal(t, "Jane", acc.Name)
}

func TestCreate(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var in models.Account
		require.NoError(t, json.Unmarshal(body, &in))
		assert.Equal(t, "Jane", in.Name)

		in.ID = 11
		w.Header().Set("Location", "http://"+r.Host+"/accounts/11")
		writeJSON(t, w, http.StatusCreated, in)
	})

	created, location, err := a.Create(context.Background(), models.Account{Name: "Jane"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Contains(t, location, "/accounts/11")
}

func TestUpdate(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/accounts/3", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Account{ID: 3, Name: "Janet"})
	})

	updated, err := a.Update(context.Background(), 3, models.Account{Name: "Janet"})

	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.Name)
}

func TestDelete(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/accounts/8", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, a.Delete(context.Background(), 8))
}

func TestHealth(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "OK"})
	})

	status, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "OK", status)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        func(t *testing.T, w http.ResponseWriter, status int)
		wantErr     error
		wantMessage string
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			body: func(t *testing.T, w http.ResponseWriter, status int) {
				writeAPIError(t, w, status, "account was not found")
			},
			wantErr:     ErrAccountNotFound,
			wantMessage: "account not found: account was not found (trace_id=trace-1)",
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body: func(t *testing.T, w http.ResponseWriter, status int) {
				writeAPIError(t, w, status, "invalid account: name is required")
			},
			wantErr: ErrBadRequest,
		},
		{
			name:   "unsupported media type",
			status: http.StatusUnsupportedMediaType,
			body: func(t *testing.T, w http.ResponseWriter, status int) {
				writeAPIError(t, w, status, "Content-Type must be application/json")
			},
			wantErr: ErrUnsupportedMediaType,
		},
		{
			name:   "service unavailable",
			status: http.StatusServiceUnavailable,
			body: func(t *testing.T, w http.ResponseWriter, status int) {
				writeAPIError(t, w, status, "retry later")
			},
			wantErr: ErrServiceUnavailable,
		},
		{
			name:   "plain text body",
			status: http.StatusBadGateway,
			body: func(t *testing.T, w http.ResponseWriter, status int) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte("upstream down\n"))
			},
			wantErr:     ErrUnexpectedStatus,
			wantMessage: "unexpected response status: http 502: upstream down",
		},
		{
			name:   "empty body",
			status: http.StatusInternalServerError,
			body: func(t *testing.T, w http.ResponseWriter, status int) {
				w.WriteHeader(status)
			},
			wantErr:     ErrUnexpectedStatus,
			wantMessage: "unexpected response status: http 500: Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				tt.body(t, w, tt.status)
			})

			_, err := a.Get(context.Background(), 1)

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMessage != "" {
				assert.EqualError(t, err, tt.wantMessage)
			}
		})
	}
}

func TestRequestErrorWrapped(t *testing.T) {
	a, err := NewHTTPAccountsAdapter(config.ClientConfig{
		HTTPAddress:    "http://127.0.0.1:1",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list accounts request")
}
