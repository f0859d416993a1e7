package repositories

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// BookRepository определяет интерфейс хранения книг.
type BookRepository interface {
	Create(ctx context.Context, book *entities.Book) (*entities.Book, error)

	Update(ctx context.Context, book *entities.Book) (*entities.Book, error)

	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*entities.Book, error)

	FindByIDAndUser(ctx context.Context, id, userID int64) (*entities.Book, error)

	FindByUser(ctx context.Context, userID int64) ([]*entities.Book, error)

	FindByUserAndGenre(ctx context.Context, userID int64, genre entities.Genre) ([]*entities.Book, error)

	SearchByTitle(ctx context.Context, userID int64, title string) ([]*entities.Book, error)

	// ExistsByISBN проверяет ISBN среди всех книг, кроме excludeID (0 - без исключений).
	ExistsByISBN(ctx context.Context, isbn string, excludeID int64) (bool, error)
}
