package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// AnalysisType - тип AI-анализа.
type AnalysisType string

// Типы анализа.
const (
	AnalysisLiterature AnalysisType = "LITERATURE_ANALYSIS"
	AnalysisTechnical  AnalysisType = "TECHNICAL_SUMMARY"
)

// MaxAnalysisContentLength - максимальная длина текста анализа.
const MaxAnalysisContentLength = 10000

// Ошибки домена анализа.
var (
	ErrInvalidAnalysisType    = NewArgumentError("invalid analysis type")
	ErrAnalysisTypeRequired   = NewArgumentError("analysis type is required")
	ErrAnalysisUserIDInvalid  = NewArgumentError("analysis user id must be positive")
	ErrAnalysisBookIDInvalid  = NewArgumentError("analysis book id must be positive")
	ErrAnalysisContentBlank   = NewArgumentError("analysis content is required")
	ErrAnalysisContentTooLong = NewArgumentError("analysis content must not exceed 10000 characters")
	ErrAnalysisNotFound       = NewArgumentError("analysis not found")
	ErrReadingNotCompleted    = NewStateError("reading must be completed before analysis")
	ErrReadingContentEmpty    = NewArgumentError("reading content is empty")
)

// ParseAnalysisType разбирает тип анализа без учета регистра.
func ParseAnalysisType(s string) (AnalysisType, error) {
	t := AnalysisType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidAnalysisType
	}
	return t, nil
}

// Valid сообщает, является ли значение известным типом.
func (t AnalysisType) Valid() bool {
	return t.Description() != ""
}

// Description возвращает человекочитаемое название типа.
func (t AnalysisType) Description() string {
	switch t {
	case AnalysisLiterature:
		return "문학 분석"
	case AnalysisTechnical:
		return "기술 요약"
	}
	return ""
}

// AIAnalysis - сохраненный результат AI-анализа. После создания не меняется.
type AIAnalysis struct {
	ID        string
	UserID    int64
	BookID    int64
	Type      AnalysisType
	Content   string
	CreatedAt time.Time
}

// NewAIAnalysis создает анализ с новым UUID и проверяет его.
func NewAIAnalysis(userID, bookID int64, analysisType AnalysisType, content string, createdAt time.Time) (*AIAnalysis, error) {
	a := &AIAnalysis{
		ID:        uuid.NewString(),
		UserID:    userID,
		BookID:    bookID,
		Type:      analysisType,
		Content:   content,
		CreatedAt: createdAt,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate проверяет инварианты анализа.
func (a *AIAnalysis) Validate() error {
	if a.UserID <= 0 {
		return ErrAnalysisUserIDInvalid
	}
	if a.BookID <= 0 {
		return ErrAnalysisBookIDInvalid
	}
	if a.Type == "" {
		return ErrAnalysisTypeRequired
	}
	if !a.Type.Valid() {
		return ErrInvalidAnalysisType
	}
	if strings.TrimSpace(a.Content) == "" {
		return ErrAnalysisContentBlank
	}
	if utf8.RuneCountInString(a.Content) > MaxAnalysisContentLength {
		return ErrAnalysisContentTooLong
	}
	return nil
}
