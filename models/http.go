package models

// ErrorResponse is the JSON body of every non-2xx answer of the changelog
// server. Message is safe to show to users; internals are never echoed.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
