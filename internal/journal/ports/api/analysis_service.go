package api

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// AnalysisUseCase определяет операции с AI-анализами.
type AnalysisUseCase interface {
	GenerateAnalysis(ctx context.Context, recordID int64, analysisType entities.AnalysisType) (*entities.AIAnalysis, error)

	GenerateDirectAnalysis(ctx context.Context, bookID int64, content string, analysisType entities.AnalysisType) (*entities.AIAnalysis, error)

	GetAnalysis(ctx context.Context, analysisID string) (*entities.AIAnalysis, error)

	GetAnalysesByUser(ctx context.Context, userID int64) ([]*entities.AIAnalysis, error)

	GetAnalysesByBook(ctx context.Context, bookID int64) ([]*entities.AIAnalysis, error)

	GetAnalysesByUserAndType(ctx context.Context, userID int64, analysisType entities.AnalysisType) ([]*entities.AIAnalysis, error)

	DeleteAnalysis(ctx context.Context, analysisID string) error
}
