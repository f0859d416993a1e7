package dto

import (
	"time"

	"bookjournal/internal/journal/domain/services"
)

// LivenessResponse - ответ проверки живости.
type LivenessResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// ReadinessResponse - ответ проверки готовности.
type ReadinessResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// NewLivenessResponse строит ответ проверки живости.
func NewLivenessResponse(l *services.Liveness) LivenessResponse {
	return LivenessResponse{Status: l.Status, Timestamp: l.Timestamp, Service: l.Service}
}

// NewReadinessResponse строит ответ проверки готовности.
func NewReadinessResponse(r *services.Readiness) ReadinessResponse {
	return ReadinessResponse{Status: r.Status, Components: r.Components}
}
