package types

type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDegraded HealthStatus = "degraded"
)

// HealthCheck is the response of the health endpoints.
type HealthCheck struct {
	Status          HealthStatus `json:"status"`
	Version         string       `json:"version,omitempty"`
	Environment     string       `json:"environment,omitempty"`
	UptimeSeconds   int64        `json:"uptime_seconds"`
	EmailConfigured bool         `json:"email_configured"`
}
