package dto

import (
	"time"

	"bookjournal/internal/journal/domain/entities"
)

// AnalysisRequest запрашивает анализ завершенной записи о чтении.
type AnalysisRequest struct {
	ReadingRecordID int64  `json:"readingRecordId" validate:"required,gt=0"`
	AnalysisType    string `json:"analysisType" validate:"required"`
}

// DirectAnalysisRequest запрашивает анализ произвольного текста по книге.
type DirectAnalysisRequest struct {
	BookID       int64  `json:"bookId" validate:"required,gt=0"`
	Content      string `json:"content" validate:"required"`
	AnalysisType string `json:"analysisType" validate:"required"`
}

// AnalysisResponse содержит сохраненный анализ.
type AnalysisResponse struct {
	AnalysisID   string    `json:"analysisId"`
	UserID       int64     `json:"userId"`
	BookID       int64     `json:"bookId"`
	AnalysisType string    `json:"analysisType"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewAnalysisResponse строит ответ из сущности анализа.
func NewAnalysisResponse(analysis *entities.AIAnalysis) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID:   analysis.ID,
		UserID:       analysis.UserID,
		BookID:       analysis.BookID,
		AnalysisType: string(analysis.Type),
		Content:      analysis.Content,
		CreatedAt:    analysis.CreatedAt,
	}
}

// NewAnalysisResponses строит список ответов.
func NewAnalysisResponses(analyses []*entities.AIAnalysis) []AnalysisResponse {
	return mapAll(analyses, NewAnalysisResponse)
}
