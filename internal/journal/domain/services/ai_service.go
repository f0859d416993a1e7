package services

import "errors"

// ErrAIService оборачивает любые сбои обращения к AI-сервису.
var ErrAIService = errors.New("ai service error")

// AIAnalysisRequest - тело запроса к сервису генерации текста.
type AIAnalysisRequest struct {
	UserID         string `json:"user_id"`
	BookID         string `json:"book_id"`
	BookTitle      string `json:"book_title"`
	BookAuthor     string `json:"book_author"`
	Genre          string `json:"genre"`
	ReadingContent string `json:"reading_content"`
}
