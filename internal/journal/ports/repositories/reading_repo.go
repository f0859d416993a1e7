package repositories

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// ReadingRecordRepository определяет интерфейс хранения записей о чтении.
// Возвращаемые записи содержат загруженных пользователя и книгу.
type ReadingRecordRepository interface {
	Create(ctx context.Context, record *entities.ReadingRecord) (*entities.ReadingRecord, error)

	Update(ctx context.Context, record *entities.ReadingRecord) (*entities.ReadingRecord, error)

	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*entities.ReadingRecord, error)

	FindByUser(ctx context.Context, userID int64) ([]*entities.ReadingRecord, error)

	FindByUserAndStatus(ctx context.Context, userID int64, status entities.ReadingStatus) ([]*entities.ReadingRecord, error)

	FindByBook(ctx context.Context, bookID int64) ([]*entities.ReadingRecord, error)
}
