package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/account-service/internal/app"
	"github.com/MKhiriev/account-service/internal/service"
	"github.com/MKhiriev/account-service/internal/store"
	"github.com/MKhiriev/account-service/internal/utils"
	"github.com/MKhiriev/account-service/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,
	ErrInvalidAccountID:     http.StatusNotFound,
	ErrRouteNotFound:        http.StatusNotFound,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrTooManyRequests:      http.StatusTooManyRequests,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidAccountID:    http.StatusNotFound,

	store.ErrAccountNotFound:     http.StatusNotFound,
	store.ErrInvalidAccountData:  http.StatusBadRequest,
	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError keeps client errors verbatim and hides server-side and
// storage detail.
func messageFromError(err error, status int) string {
	switch {
	case errors.Is(err, store.ErrInvalidAccountData):
		return app.MsgInvalidAccountData
	case status == http.StatusServiceUnavailable:
		return app.MsgServiceUnavailable
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError renders err as the JSON error body with the status it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	writeErrorStatus(w, r, status, messageFromError(err, status))
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID, _ := utils.GetTraceIDFromContext(r.Context())

	response := models.ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		TraceID: traceID,
	}

	_, _ = utils.WriteJSON(w, response, status)
}
