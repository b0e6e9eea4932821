package models

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	// Status repeats the HTTP status code of the response.
	Status int `json:"status"`

	// Error is the canonical status text (e.g. "Not Found").
	Error string `json:"error"`

	// Message describes what went wrong in terms of the request.
	Message string `json:"message"`

	// TraceID correlates the response with server log entries.
	TraceID string `json:"trace_id,omitempty"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// AppInfo is the informational payload served on the root path.
type AppInfo struct {
	Name    string    `json:"name"`
	Version string    `json:"version"`
	Paths   []string  `json:"paths"`
	Build   BuildInfo `json:"build"`
}

// BuildInfo is the JSON view of [AppBuildInfo].
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
