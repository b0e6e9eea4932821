// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/account-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func echoHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}

func TestGZip_ResponseNegotiation(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "gzip", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip, br", wantGzip: true},
		{name: "gzip with quality", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzip: true},
		{name: "no header", acceptEncoding: "", wantGzip: false},
		{name: "only br", acceptEncoding: "br", wantGzip: false},
	}

	const payload = `{"id":1,"name":"Jane"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(payload))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler(http.StatusCreated)).ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
				assert.Equal(t, payload, gunzip(t, rec.Body))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, rec.Body.String())
			}
		})
	}
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	for _, encoding := range []string{"gzip", "gzip, deflate"} {
		t.Run(encoding, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/accounts", gzipBytes(t, janeJSON))
			req.Header.Set("Content-Encoding", encoding)
			rec := httptest.NewRecorder()

			var sawEncoding string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawEncoding = r.Header.Get("Content-Encoding")
				echoHandler(http.StatusOK)(w, r)
			})
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, sawEncoding)
			assert.Equal(t, janeJSON, rec.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader("not gzipped"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	withGZip(next).ServeHTTP(rec, req)

	assert.False(t, called)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid gzip data", decodeBody[models.ErrorResponse](t, rec).Message)
}

func TestGZip_NoContentIsNotEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/accounts/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusNoContent)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_ImplicitStatusAndContentLengthDropped(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "5")
		_, _ = w.Write([]byte("hello"))
	})
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Length"))
	assert.Equal(t, "hello", gunzip(t, rec.Body))
}

func TestGZip_CompressesRepetitiveData(t *testing.T) {
	data := strings.Repeat("account data ", 1000)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(data))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

	assert.Less(t, rec.Body.Len(), len(data)/10)
}

func TestGZip_PoolReuseUnderConcurrency(t *testing.T) {
	handler := withGZip(echoHandler(http.StatusOK))

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			payload := strings.Repeat("x", i+1)
			req := httptest.NewRequest(http.MethodPost, "/", gzipBytes(t, payload))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			zr, err := gzip.NewReader(rec.Body)
			if !assert.NoError(t, err) {
				return
			}
			got, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Equal(t, payload, string(got))
		}()
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}

	assert.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
