package repositories

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// AnalysisRepository определяет интерфейс хранения AI-анализов.
// Списки упорядочены от новых к старым.
type AnalysisRepository interface {
	Save(ctx context.Context, analysis *entities.AIAnalysis) (*entities.AIAnalysis, error)

	FindByID(ctx context.Context, id string) (*entities.AIAnalysis, error)

	FindByUser(ctx context.Context, userID int64) ([]*entities.AIAnalysis, error)

	FindByBook(ctx context.Context, bookID int64) ([]*entities.AIAnalysis, error)

	FindByUserAndType(ctx context.Context, userID int64, analysisType entities.AnalysisType) ([]*entities.AIAnalysis, error)

	Delete(ctx context.Context, id string) error
}
