package api

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// ReadingUseCase определяет операции с записями о чтении.
type ReadingUseCase interface {
	CreateReadingRecord(ctx context.Context, userID, bookID int64, content string) (*entities.ReadingRecord, error)

	UpdateReadingRecord(ctx context.Context, recordID int64, content string) (*entities.ReadingRecord, error)

	CompleteReading(ctx context.Context, recordID int64) (*entities.ReadingRecord, error)

	GetReadingRecord(ctx context.Context, recordID int64) (*entities.ReadingRecord, error)

	ListByUser(ctx context.Context, userID int64) ([]*entities.ReadingRecord, error)

	ListByUserAndStatus(ctx context.Context, userID int64, status entities.ReadingStatus) ([]*entities.ReadingRecord, error)

	ListByBook(ctx context.Context, bookID int64) ([]*entities.ReadingRecord, error)

	DeleteReadingRecord(ctx context.Context, recordID int64) error
}
