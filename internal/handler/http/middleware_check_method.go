// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// knownMethods are probed, in this order, to build the Allow header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// with a 405 JSON error and an Allow header listing every method registered
// for the requested path. HEAD follows GET, served by middleware.GetHead.
// OPTIONS is always listed since preflight is served on any path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
			path = rctx.RoutePath
		}

		w.Header().Set("Allow", strings.Join(allowedMethods(router, path), ", "))
		writeError(w, r, ErrMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	allowed := make([]string, 0, len(knownMethods)+2)
	for _, method := range knownMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
			if method == http.MethodGet {
				allowed = append(allowed, http.MethodHead)
			}
		}
	}
	return append(allowed, http.MethodOptions)
}
