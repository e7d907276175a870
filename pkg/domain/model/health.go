package model

// HealthStatus represents the health check status
type HealthStatus struct {
	Status string `json:"status"`
	Pod    string `json:"pod"`
	// Timestamp is seconds since the Unix epoch, fractional
	Timestamp float64 `json:"timestamp"`
}
