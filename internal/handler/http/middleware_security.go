// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/account-service/internal/utils"
)

// securityHeaders are attached to every response, whatever its status.
var securityHeaders = map[string]string{
	"X-Frame-Options":             "SAMEORIGIN",
	"X-Content-Type-Options":      "nosniff",
	"Content-Security-Policy":     "default-src 'self'; object-src 'none'",
	"Referrer-Policy":             "strict-origin-when-cross-origin",
	"Access-Control-Allow-Origin": "*",
}

const (
	hstsHeader = "Strict-Transport-Security"
	hstsValue  = "max-age=31536000; includeSubDomains"

	allowMethodsHeader = "Access-Control-Allow-Methods"
	allowMethodsValue  = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeadersHeader = "Access-Control-Allow-Headers"
	allowHeadersValue  = "Content-Type, X-Trace-ID"
)

// withSecurityPolicy sets the security and CORS headers before the next
// handler runs. It never touches the body or the status code.
func withSecurityPolicy(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		for name, value := range securityHeaders {
			header.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}

// withForceHTTPS redirects plain-HTTP requests to the same URL over HTTPS
// and marks secure responses with HSTS. Requests terminated by a proxy are
// trusted when it sends X-Forwarded-Proto: https.
func withForceHTTPS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.IsSecureRequest(r) {
			target := "https://" + r.Host + r.URL.RequestURI()
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		w.Header().Set(hstsHeader, hstsValue)
		next.ServeHTTP(w, r)
	})
}

// withPreflight answers CORS preflight requests on any path.
func withPreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set(allowMethodsHeader, allowMethodsValue)
		w.Header().Set(allowHeadersHeader, allowHeadersValue)
		w.WriteHeader(http.StatusNoContent)
	})
}
