package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/ports/repositories"
	pgdb "bookjournal/pkg/db/postgres"
	"bookjournal/pkg/logger"
)

// BookRepository реализует интерфейс repositories.BookRepository для работы с Postgres.
type BookRepository struct {
	pool pgdb.Querier
}

// NewBookRepository создает новый экземпляр репозитория книг.
func NewBookRepository(pool pgdb.Querier) repositories.BookRepository {
	return &BookRepository{pool: pool}
}

func newBookRow() *bookRow { return &bookRow{} }

func bookEntity(r *bookRow) *entities.Book { return r.toEntity() }

// Create сохраняет новую книгу.
func (r *BookRepository) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "Create"))

	query := `
        INSERT INTO books (title, author, isbn, genre, description, content, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + bookColumns

	var row bookRow
	err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query,
		book.Title,
		book.Author,
		nullableString(book.ISBN),
		string(book.Genre),
		book.Description,
		book.Content,
		book.UserID,
		book.CreatedAt,
		book.UpdatedAt,
	).Scan(row.dest()...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "isbn already exists", zap.String("isbn", book.ISBN))
			return nil, entities.ErrISBNAlreadyExists
		}
		log.Error(ctx, "error creating book", zap.Error(err))
		return nil, fmt.Errorf("error creating book: %w", err)
	}

	return row.toEntity(), nil
}

// Update обновляет книгу целиком.
func (r *BookRepository) Update(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "Update"))

	query := `
        UPDATE books
        SET title = $2, author = $3, isbn = $4, genre = $5, description = $6, content = $7, updated_at = $8
        WHERE id = $1
        RETURNING ` + bookColumns

	var row bookRow
	err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		nullableString(book.ISBN),
		string(book.Genre),
		book.Description,
		book.Content,
		book.UpdatedAt,
	).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "book not found for update", zap.Int64("id", book.ID))
			return nil, entities.ErrBookNotFound
		}
		if isUniqueViolation(err) {
			log.Debug(ctx, "isbn already exists", zap.String("isbn", book.ISBN))
			return nil, entities.ErrISBNAlreadyExists
		}
		log.Error(ctx, "error updating book", zap.Error(err))
		return nil, fmt.Errorf("error updating book: %w", err)
	}

	return row.toEntity(), nil
}

// Delete удаляет книгу по ID.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "Delete"))

	result, err := pgdb.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting book", zap.Error(err))
		return fmt.Errorf("error deleting book: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "book not found for deletion", zap.Int64("id", id))
		return entities.ErrBookNotFound
	}

	return nil
}

// FindByID находит книгу по ID без учета владельца.
func (r *BookRepository) FindByID(ctx context.Context, id int64) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "FindByID"))

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var row bookRow
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "book not found", zap.Int64("id", id))
			return nil, entities.ErrBookNotFound
		}
		log.Error(ctx, "error finding book by id", zap.Error(err))
		return nil, fmt.Errorf("error querying book by id: %w", err)
	}

	return row.toEntity(), nil
}

// FindByIDAndUser находит книгу, принадлежащую пользователю.
func (r *BookRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "FindByIDAndUser"))

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 AND user_id = $2`

	var row bookRow
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query, id, userID).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "book not found for user", zap.Int64("id", id), zap.Int64("user_id", userID))
			return nil, entities.ErrBookNotFoundOrDenied
		}
		log.Error(ctx, "error finding book by id and user", zap.Error(err))
		return nil, fmt.Errorf("error querying book by id and user: %w", err)
	}

	return row.toEntity(), nil
}

// FindByUser возвращает книги пользователя.
func (r *BookRepository) FindByUser(ctx context.Context, userID int64) ([]*entities.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 ORDER BY id`
	return r.list(ctx, "FindByUser", query, userID)
}

// FindByUserAndGenre возвращает книги пользователя указанного жанра.
func (r *BookRepository) FindByUserAndGenre(ctx context.Context, userID int64, genre entities.Genre) ([]*entities.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 AND genre = $2 ORDER BY id`
	return r.list(ctx, "FindByUserAndGenre", query, userID, string(genre))
}

// SearchByTitle ищет книги пользователя по вхождению в название без учета регистра.
func (r *BookRepository) SearchByTitle(ctx context.Context, userID int64, title string) ([]*entities.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 AND title ILIKE '%' || $2 || '%' ORDER BY id`
	return r.list(ctx, "SearchByTitle", query, userID, title)
}

// ExistsByISBN проверяет, используется ли ISBN другой книгой.
func (r *BookRepository) ExistsByISBN(ctx context.Context, isbn string, excludeID int64) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "ExistsByISBN"))

	query := `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1 AND id <> $2)`

	var exists bool
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query, isbn, excludeID).Scan(&exists); err != nil {
		log.Error(ctx, "error checking isbn existence", zap.Error(err))
		return false, fmt.Errorf("error checking isbn existence: %w", err)
	}

	return exists, nil
}

func (r *BookRepository) list(ctx context.Context, method, query string, args ...any) ([]*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", method))

	rows, err := pgdb.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error querying books", zap.Error(err))
		return nil, fmt.Errorf("error querying books: %w", err)
	}

	books, err := collect(rows, newBookRow, bookEntity)
	if err != nil {
		log.Error(ctx, "error scanning book row", zap.Error(err))
		return nil, fmt.Errorf("error scanning book row: %w", err)
	}

	return books, nil
}
