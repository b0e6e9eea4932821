// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/account-service/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMethodTestRouter() *chi.Mux {
	noop := func(w http.ResponseWriter, r *http.Request) {}

	router := chi.NewRouter()
	router.Use(middleware.GetHead)
	router.Get("/items", noop)
	router.Post("/items", noop)
	router.Patch("/items/{id}", noop)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestAllowedMethods(t *testing.T) {
	router := newMethodTestRouter()

	tests := []struct {
		path string
		want []string
	}{
		{"/items", []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}},
		{"/items/7", []string{http.MethodPatch, http.MethodOptions}},
		{"/nothing", []string{http.MethodOptions}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, allowedMethods(router, tt.path))
		})
	}
}

func TestCheckHTTPMethod_Writes405(t *testing.T) {
	router := newMethodTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/items", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD, POST, OPTIONS", rec.Header().Get("Allow"))

	resp := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Status)
	assert.Equal(t, "Method Not Allowed", resp.Error)
}
