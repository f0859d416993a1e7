package dto

import (
	"time"

	"bookjournal/internal/journal/domain/entities"
)

// CreateReadingRecordRequest содержит данные для начала чтения.
type CreateReadingRecordRequest struct {
	BookID  int64  `json:"bookId" validate:"required,gt=0"`
	Content string `json:"content"`
}

// UpdateReadingRecordRequest содержит новую заметку о чтении.
type UpdateReadingRecordRequest struct {
	Content string `json:"content"`
}

// ReadingRecordResponse содержит запись о чтении вместе с пользователем и книгой.
type ReadingRecordResponse struct {
	ID        int64        `json:"id"`
	User      UserResponse `json:"user"`
	Book      BookResponse `json:"book"`
	Content   string       `json:"content"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewReadingRecordResponse строит ответ из сущности записи.
func NewReadingRecordResponse(record *entities.ReadingRecord) ReadingRecordResponse {
	resp := ReadingRecordResponse{
		ID:        record.ID,
		Content:   record.Content,
		Status:    string(record.Status),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if record.User != nil {
		resp.User = NewUserResponse(record.User)
	}
	if record.Book != nil {
		resp.Book = NewBookResponse(record.Book)
	}
	return resp
}

// NewReadingRecordResponses строит список ответов.
func NewReadingRecordResponses(records []*entities.ReadingRecord) []ReadingRecordResponse {
	return mapAll(records, NewReadingRecordResponse)
}
