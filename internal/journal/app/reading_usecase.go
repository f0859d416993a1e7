package app

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/ports/api"
	"bookjournal/internal/journal/ports/repositories"
	"bookjournal/pkg/logger"
)

const (
	methodCreateReadingRecord = "CreateReadingRecord"
	methodUpdateReadingRecord = "UpdateReadingRecord"
	methodCompleteReading     = "CompleteReading"
	methodDeleteReadingRecord = "DeleteReadingRecord"

	msgReadingCreated          = "reading record created"
	msgReadingUpdated          = "reading record updated"
	msgReadingCompleted        = "reading completed"
	msgReadingAlreadyCompleted = "reading record already completed"
	msgReadingDeleted          = "reading record deleted"
	msgReadingContentTooLong   = "reading content too long"

	errCtxFindingReading  = "finding reading record"
	errCtxCreatingReading = "creating reading record"
	errCtxUpdatingReading = "updating reading record"
	errCtxDeletingReading = "deleting reading record"
	errCtxListingReadings = "listing reading records"
	errCtxFindingOwner    = "finding record owner"
)

// ReadingUseCaseImpl реализует интерфейс ReadingUseCase.
type ReadingUseCaseImpl struct {
	tx          repositories.Transactor
	userRepo    repositories.UserRepository
	bookRepo    repositories.BookRepository
	readingRepo repositories.ReadingRecordRepository
}

// NewReadingUseCase создает новый экземпляр сервиса записей о чтении.
func NewReadingUseCase(
	tx repositories.Transactor,
	userRepo repositories.UserRepository,
	bookRepo repositories.BookRepository,
	readingRepo repositories.ReadingRecordRepository,
) api.ReadingUseCase {
	return &ReadingUseCaseImpl{
		tx:          tx,
		userRepo:    userRepo,
		bookRepo:    bookRepo,
		readingRepo: readingRepo,
	}
}

// CreateReadingRecord начинает чтение книги, принадлежащей пользователю.
func (r *ReadingUseCaseImpl) CreateReadingRecord(ctx context.Context, userID, bookID int64, content string) (*entities.ReadingRecord, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateReadingRecord), zap.Int64("userID", userID), zap.Int64("bookID", bookID))

	if utf8.RuneCountInString(content) > entities.MaxReadingContentLength {
		log.Debug(ctx, msgReadingContentTooLong)
		return nil, entities.ErrReadingContentTooLong
	}

	var created *entities.ReadingRecord
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := r.userRepo.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingOwner, err)
		}

		book, err := r.bookRepo.FindByIDAndUser(ctx, bookID, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingBook, err)
		}

		record, err := entities.NewReadingRecord(user, book, content)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxCreatingReading, err)
		}

		created, err = r.readingRepo.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxCreatingReading, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgReadingCreated, zap.Int64("recordID", created.ID))
	return created, nil
}

// UpdateReadingRecord меняет заметку незавершенной записи.
func (r *ReadingUseCaseImpl) UpdateReadingRecord(ctx context.Context, recordID int64, content string) (*entities.ReadingRecord, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateReadingRecord), zap.Int64("recordID", recordID))

	var updated *entities.ReadingRecord
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		record, err := r.readingRepo.FindByID(ctx, recordID)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingReading, err)
		}
		if err := record.UpdateContent(content); err != nil {
			return fmt.Errorf("%s: %w", errCtxUpdatingReading, err)
		}
		updated, err = r.readingRepo.Update(ctx, record)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxUpdatingReading, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgReadingUpdated)
	return updated, nil
}

// CompleteReading завершает чтение. Повторный вызов возвращает текущее состояние без ошибки.
func (r *ReadingUseCaseImpl) CompleteReading(ctx context.Context, recordID int64) (*entities.ReadingRecord, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCompleteReading), zap.Int64("recordID", recordID))

	var result *entities.ReadingRecord
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		record, err := r.readingRepo.FindByID(ctx, recordID)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingReading, err)
		}

		if err := record.Complete(); err != nil {
			if errors.Is(err, entities.ErrReadingAlreadyCompleted) {
				log.Debug(ctx, msgReadingAlreadyCompleted)
				result = record
				return nil
			}
			return fmt.Errorf("%s: %w", errCtxUpdatingReading, err)
		}

		result, err = r.readingRepo.Update(ctx, record)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxUpdatingReading, err)
		}
		log.Info(ctx, msgReadingCompleted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetReadingRecord возвращает запись по ID.
func (r *ReadingUseCaseImpl) GetReadingRecord(ctx context.Context, recordID int64) (*entities.ReadingRecord, error) {
	var record *entities.ReadingRecord
	err := r.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = r.readingRepo.FindByID(ctx, recordID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingReading, err)
	}
	return record, nil
}

// ListByUser возвращает записи пользователя.
func (r *ReadingUseCaseImpl) ListByUser(ctx context.Context, userID int64) ([]*entities.ReadingRecord, error) {
	return r.list(ctx, func(ctx context.Context) ([]*entities.ReadingRecord, error) {
		return r.readingRepo.FindByUser(ctx, userID)
	})
}

// ListByUserAndStatus возвращает записи пользователя с указанным статусом.
func (r *ReadingUseCaseImpl) ListByUserAndStatus(ctx context.Context, userID int64, status entities.ReadingStatus) ([]*entities.ReadingRecord, error) {
	return r.list(ctx, func(ctx context.Context) ([]*entities.ReadingRecord, error) {
		return r.readingRepo.FindByUserAndStatus(ctx, userID, status)
	})
}

// ListByBook возвращает записи по книге.
func (r *ReadingUseCaseImpl) ListByBook(ctx context.Context, bookID int64) ([]*entities.ReadingRecord, error) {
	return r.list(ctx, func(ctx context.Context) ([]*entities.ReadingRecord, error) {
		return r.readingRepo.FindByBook(ctx, bookID)
	})
}

// DeleteReadingRecord удаляет запись.
func (r *ReadingUseCaseImpl) DeleteReadingRecord(ctx context.Context, recordID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteReadingRecord), zap.Int64("recordID", recordID))

	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := r.readingRepo.FindByID(ctx, recordID); err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingReading, err)
		}
		if err := r.readingRepo.Delete(ctx, recordID); err != nil {
			return fmt.Errorf("%s: %w", errCtxDeletingReading, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info(ctx, msgReadingDeleted)
	return nil
}

func (r *ReadingUseCaseImpl) list(ctx context.Context, query func(ctx context.Context) ([]*entities.ReadingRecord, error)) ([]*entities.ReadingRecord, error) {
	var records []*entities.ReadingRecord
	err := r.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		records, err = query(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingReadings, err)
	}
	return records, nil
}
