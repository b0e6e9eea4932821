package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withMetrics records request count and latency labelled by the chi route
// pattern, so /accounts/1 and /accounts/2 share one series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.HTTPActiveRequests.Inc()
		defer h.metrics.HTTPActiveRequests.Dec()

		start := time.Now()
		mw := newResponseWriter(w)
		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.ObserveRequest(r.Method, route, mw.Status(), time.Since(start))
	})
}
