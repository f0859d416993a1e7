package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/ports/api"
	"bookjournal/internal/journal/ports/repositories"
	"bookjournal/pkg/logger"
)

const (
	methodCreateBook       = "CreateBook"
	methodUpdateBook       = "UpdateBook"
	methodDeleteBook       = "DeleteBook"
	methodGetBook          = "GetBook"
	methodListBooks        = "ListBooks"
	methodListBooksByGenre = "ListBooksByGenre"
	methodSearchBooks      = "SearchBooks"

	msgBookCreated   = "book created"
	msgBookUpdated   = "book updated"
	msgBookDeleted   = "book deleted"
	msgDuplicateISBN = "isbn already used by another book"
	msgInvalidBook   = "invalid book data"

	errCtxCheckingISBN   = "checking isbn"
	errCtxValidatingBook = "validating book"
	errCtxCreatingBook   = "creating book"
	errCtxUpdatingBook   = "updating book"
	errCtxDeletingBook   = "deleting book"
	errCtxFindingBook    = "finding book"
	errCtxListingBooks   = "listing books"
)

// BookUseCaseImpl реализует интерфейс BookUseCase. Все операции ограничены владельцем.
type BookUseCaseImpl struct {
	tx       repositories.Transactor
	bookRepo repositories.BookRepository
}

// NewBookUseCase создает новый экземпляр сервиса книг.
func NewBookUseCase(tx repositories.Transactor, bookRepo repositories.BookRepository) api.BookUseCase {
	return &BookUseCaseImpl{tx: tx, bookRepo: bookRepo}
}

// CreateBook создает книгу текущего пользователя.
func (b *BookUseCaseImpl) CreateBook(ctx context.Context, userID int64, in api.BookInput) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateBook), zap.Int64("userID", userID))

	book, err := entities.NewBook(userID, in.Title, in.Author, in.ISBN, in.Genre, in.Description, in.Content)
	if err != nil {
		log.Debug(ctx, msgInvalidBook, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingBook, err)
	}

	var created *entities.Book
	err = b.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := b.ensureISBNFree(ctx, book.ISBN, 0); err != nil {
			return err
		}
		var err error
		created, err = b.bookRepo.Create(ctx, book)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxCreatingBook, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgBookCreated, zap.Int64("bookID", created.ID))
	return created, nil
}

// UpdateBook перестраивает книгу из новых полей, сохраняя ID, владельца и дату создания.
func (b *BookUseCaseImpl) UpdateBook(ctx context.Context, userID, bookID int64, in api.BookInput) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateBook), zap.Int64("userID", userID), zap.Int64("bookID", bookID))

	var updated *entities.Book
	err := b.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := b.bookRepo.FindByIDAndUser(ctx, bookID, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingBook, err)
		}

		book, err := entities.NewBook(userID, in.Title, in.Author, in.ISBN, in.Genre, in.Description, in.Content)
		if err != nil {
			log.Debug(ctx, msgInvalidBook, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxValidatingBook, err)
		}
		book.ID = existing.ID
		book.CreatedAt = existing.CreatedAt

		if err := b.ensureISBNFree(ctx, book.ISBN, book.ID); err != nil {
			return err
		}

		updated, err = b.bookRepo.Update(ctx, book)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxUpdatingBook, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgBookUpdated)
	return updated, nil
}

// DeleteBook удаляет книгу текущего пользователя.
func (b *BookUseCaseImpl) DeleteBook(ctx context.Context, userID, bookID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteBook), zap.Int64("userID", userID), zap.Int64("bookID", bookID))

	err := b.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := b.bookRepo.FindByIDAndUser(ctx, bookID, userID); err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingBook, err)
		}
		if err := b.bookRepo.Delete(ctx, bookID); err != nil {
			return fmt.Errorf("%s: %w", errCtxDeletingBook, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info(ctx, msgBookDeleted)
	return nil
}

// GetBook возвращает книгу текущего пользователя.
func (b *BookUseCaseImpl) GetBook(ctx context.Context, userID, bookID int64) (*entities.Book, error) {
	logger.Log(ctx).Debug(ctx, methodGetBook, zap.Int64("userID", userID), zap.Int64("bookID", bookID))

	var book *entities.Book
	err := b.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = b.bookRepo.FindByIDAndUser(ctx, bookID, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingBook, err)
	}
	return book, nil
}

// ListBooks возвращает все книги пользователя.
func (b *BookUseCaseImpl) ListBooks(ctx context.Context, userID int64) ([]*entities.Book, error) {
	return b.list(ctx, methodListBooks, func(ctx context.Context) ([]*entities.Book, error) {
		return b.bookRepo.FindByUser(ctx, userID)
	})
}

// ListBooksByGenre возвращает книги пользователя указанного жанра.
func (b *BookUseCaseImpl) ListBooksByGenre(ctx context.Context, userID int64, genre entities.Genre) ([]*entities.Book, error) {
	return b.list(ctx, methodListBooksByGenre, func(ctx context.Context) ([]*entities.Book, error) {
		return b.bookRepo.FindByUserAndGenre(ctx, userID, genre)
	})
}

// SearchBooks ищет книги пользователя по части названия.
func (b *BookUseCaseImpl) SearchBooks(ctx context.Context, userID int64, title string) ([]*entities.Book, error) {
	return b.list(ctx, methodSearchBooks, func(ctx context.Context) ([]*entities.Book, error) {
		return b.bookRepo.SearchByTitle(ctx, userID, title)
	})
}

func (b *BookUseCaseImpl) list(ctx context.Context, method string, query func(ctx context.Context) ([]*entities.Book, error)) ([]*entities.Book, error) {
	logger.Log(ctx).Debug(ctx, method)

	var books []*entities.Book
	err := b.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		books, err = query(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingBooks, err)
	}
	return books, nil
}

func (b *BookUseCaseImpl) ensureISBNFree(ctx context.Context, isbn string, excludeID int64) error {
	if isbn == "" {
		return nil
	}
	exists, err := b.bookRepo.ExistsByISBN(ctx, isbn, excludeID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingISBN, err)
	}
	if exists {
		logger.Log(ctx).Debug(ctx, msgDuplicateISBN, zap.String("isbn", isbn))
		return fmt.Errorf("%s: %w", errCtxCheckingISBN, entities.ErrISBNAlreadyExists)
	}
	return nil
}
