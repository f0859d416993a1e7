package api

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// BookInput - поля книги при создании и обновлении.
type BookInput struct {
	Title       string
	Author      string
	ISBN        string
	Genre       entities.Genre
	Description string
	Content     string
}

// BookUseCase определяет операции с книгами текущего пользователя.
type BookUseCase interface {
	CreateBook(ctx context.Context, userID int64, in BookInput) (*entities.Book, error)

	UpdateBook(ctx context.Context, userID, bookID int64, in BookInput) (*entities.Book, error)

	DeleteBook(ctx context.Context, userID, bookID int64) error

	GetBook(ctx context.Context, userID, bookID int64) (*entities.Book, error)

	ListBooks(ctx context.Context, userID int64) ([]*entities.Book, error)

	ListBooksByGenre(ctx context.Context, userID int64, genre entities.Genre) ([]*entities.Book, error)

	SearchBooks(ctx context.Context, userID int64, title string) ([]*entities.Book, error)
}
