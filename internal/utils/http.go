package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "OK"}, http.StatusOK)
//	WriteJSON(w, accounts, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// IsSecureRequest reports whether r reached the service over TLS, either
// directly or through a proxy that sets X-Forwarded-Proto.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// RequestScheme returns "https" for secure requests and "http" otherwise.
func RequestScheme(r *http.Request) string {
	if IsSecureRequest(r) {
		return "https"
	}
	return "http"
}

// AbsoluteURL builds an absolute URL for path on the host the request was
// addressed to, e.g. "http://localhost:8080/accounts/7".
func AbsoluteURL(r *http.Request, path string) string {
	return RequestScheme(r) + "://" + r.Host + path
}
