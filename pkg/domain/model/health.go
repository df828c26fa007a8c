package model

import "time"

const HealthStatusHealthy = "healthy"

// HealthStatus is the body of the health check endpoint
type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	StartedAt time.Time `json:"started_at"`
}
