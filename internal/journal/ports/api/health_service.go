package api

import (
	"context"

	"bookjournal/internal/journal/domain/services"
)

// HealthUseCase определяет проверки живости и готовности.
type HealthUseCase interface {
	Liveness(ctx context.Context) *services.Liveness

	Readiness(ctx context.Context) *services.Readiness
}
