package services

import (
	"context"

	"bookjournal/internal/journal/domain/services"
)

// AIClient - клиент внешнего сервиса генерации текста.
type AIClient interface {
	GenerateAnalysis(ctx context.Context, req *services.AIAnalysisRequest) (string, error)

	IsHealthy(ctx context.Context) bool
}
