// Package status defines domain types for the status service.
package status

// Probe states reported to the orchestrator.
const (
	StatusHealthy     = "healthy"
	StatusReady       = "ready"
	StatusUnavailable = "unavailable"
)

// Report is the payload returned by the probe endpoints.
type Report struct {
	Status string `json:"status"`
}
