package services

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// AnalysisCache кэширует анализы по идентификатору.
// Get возвращает (nil, nil) при промахе.
type AnalysisCache interface {
	Get(ctx context.Context, id string) (*entities.AIAnalysis, error)

	Set(ctx context.Context, analysis *entities.AIAnalysis) error

	Delete(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}
