package model

// Package model contains the response payload shapes shared by handlers
// and the probes. Keep it minimal; no business logic here.

// StatusResponse is the fixed two-field payload returned by the
// placeholder routes.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	UptimeSec int64  `json:"uptime_sec"`
}
