package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/go-chi/httprate"
)

// withRateLimit allows limit requests per minute per client IP and answers
// the excess with a 429 JSON error.
func withRateLimit(limit int) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().
				Str("func", "withRateLimit").
				Str("remote_addr", r.RemoteAddr).
				Msg("rate limit exceeded")
			writeError(w, r, ErrTooManyRequests)
		}),
	)
}
