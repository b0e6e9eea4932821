package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/account-service/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:           ErrBadRequest,
	http.StatusNotFound:             ErrAccountNotFound,
	http.StatusUnsupportedMediaType: ErrUnsupportedMediaType,
	http.StatusServiceUnavailable:   ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it prefers the
// message of the JSON error body and falls back to the raw body.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if message == "" {
		message = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, message)
}

func errorMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		if errResp.TraceID != "" {
			return fmt.Sprintf("%s (trace_id=%s)", errResp.Message, errResp.TraceID)
		}
		return errResp.Message
	}
	return strings.TrimSpace(string(body))
}
