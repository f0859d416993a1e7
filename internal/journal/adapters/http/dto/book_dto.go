package dto

import (
	"time"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/ports/api"
)

// BookRequest содержит поля книги для создания и обновления.
type BookRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Author      string `json:"author" validate:"required,max=255"`
	ISBN        string `json:"isbn" validate:"max=20"`
	Genre       string `json:"genre" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Input преобразует запрос во входные данные сценария. Жанр должен быть уже разобран.
func (r *BookRequest) Input(genre entities.Genre) api.BookInput {
	return api.BookInput{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Genre:       genre,
		Description: r.Description,
		Content:     r.Content,
	}
}

// BookResponse содержит данные книги.
type BookResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn,omitempty"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewBookResponse строит ответ из сущности книги.
func NewBookResponse(book *entities.Book) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Genre:       book.Genre.String(),
		Description: book.Description,
		Content:     book.Content,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
}

// NewBookResponses строит список ответов. Пустой список кодируется как [].
func NewBookResponses(books []*entities.Book) []BookResponse {
	return mapAll(books, NewBookResponse)
}

func mapAll[E any, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
