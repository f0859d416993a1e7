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

const readingSelect = `
        SELECT r.id, r.content, r.status, r.created_at, r.updated_at,
               u.id, u.email, u.password, u.nickname, u.created_at, u.updated_at,
               b.id, b.title, b.author, b.isbn, b.genre, b.description, b.content, b.user_id, b.created_at, b.updated_at
        FROM reading_records r
        JOIN users u ON u.id = r.user_id
        JOIN books b ON b.id = r.book_id`

// ReadingRecordRepository реализует интерфейс repositories.ReadingRecordRepository для работы с Postgres.
type ReadingRecordRepository struct {
	pool pgdb.Querier
}

// NewReadingRecordRepository создает новый экземпляр репозитория записей о чтении.
func NewReadingRecordRepository(pool pgdb.Querier) repositories.ReadingRecordRepository {
	return &ReadingRecordRepository{pool: pool}
}

func newReadingRow() *readingRow { return &readingRow{} }

func readingEntity(r *readingRow) *entities.ReadingRecord { return r.toEntity() }

// Create сохраняет запись и возвращает ее вместе с пользователем и книгой.
func (r *ReadingRecordRepository) Create(ctx context.Context, record *entities.ReadingRecord) (*entities.ReadingRecord, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reading_record"), zap.String("method", "Create"))

	query := `
        INSERT INTO reading_records (user_id, book_id, content, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	var id int64
	err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query,
		record.UserID(),
		record.BookID(),
		record.Content,
		string(record.Status),
		record.CreatedAt,
		record.UpdatedAt,
	).Scan(&id)
	if err != nil {
		log.Error(ctx, "error creating reading record", zap.Error(err))
		return nil, fmt.Errorf("error creating reading record: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Update сохраняет содержимое и статус записи.
func (r *ReadingRecordRepository) Update(ctx context.Context, record *entities.ReadingRecord) (*entities.ReadingRecord, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reading_record"), zap.String("method", "Update"))

	query := `UPDATE reading_records SET content = $2, status = $3, updated_at = $4 WHERE id = $1`

	result, err := pgdb.Conn(ctx, r.pool).Exec(ctx, query,
		record.ID,
		record.Content,
		string(record.Status),
		record.UpdatedAt,
	)
	if err != nil {
		log.Error(ctx, "error updating reading record", zap.Error(err))
		return nil, fmt.Errorf("error updating reading record: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "reading record not found for update", zap.Int64("id", record.ID))
		return nil, entities.ErrReadingRecordNotFound
	}

	return r.FindByID(ctx, record.ID)
}

// Delete удаляет запись по ID.
func (r *ReadingRecordRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "reading_record"), zap.String("method", "Delete"))

	result, err := pgdb.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM reading_records WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting reading record", zap.Error(err))
		return fmt.Errorf("error deleting reading record: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "reading record not found for deletion", zap.Int64("id", id))
		return entities.ErrReadingRecordNotFound
	}

	return nil
}

// FindByID находит запись по ID.
func (r *ReadingRecordRepository) FindByID(ctx context.Context, id int64) (*entities.ReadingRecord, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reading_record"), zap.String("method", "FindByID"))

	var row readingRow
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, readingSelect+` WHERE r.id = $1`, id).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "reading record not found", zap.Int64("id", id))
			return nil, entities.ErrReadingRecordNotFound
		}
		log.Error(ctx, "error finding reading record by id", zap.Error(err))
		return nil, fmt.Errorf("error querying reading record by id: %w", err)
	}

	return row.toEntity(), nil
}

// FindByUser возвращает записи пользователя.
func (r *ReadingRecordRepository) FindByUser(ctx context.Context, userID int64) ([]*entities.ReadingRecord, error) {
	return r.list(ctx, "FindByUser", readingSelect+` WHERE r.user_id = $1 ORDER BY r.id`, userID)
}

// FindByUserAndStatus возвращает записи пользователя с указанным статусом.
func (r *ReadingRecordRepository) FindByUserAndStatus(ctx context.Context, userID int64, status entities.ReadingStatus) ([]*entities.ReadingRecord, error) {
	return r.list(ctx, "FindByUserAndStatus", readingSelect+` WHERE r.user_id = $1 AND r.status = $2 ORDER BY r.id`, userID, string(status))
}

// FindByBook возвращает записи по книге.
func (r *ReadingRecordRepository) FindByBook(ctx context.Context, bookID int64) ([]*entities.ReadingRecord, error) {
	return r.list(ctx, "FindByBook", readingSelect+` WHERE r.book_id = $1 ORDER BY r.id`, bookID)
}

func (r *ReadingRecordRepository) list(ctx context.Context, method, query string, args ...any) ([]*entities.ReadingRecord, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reading_record"), zap.String("method", method))

	rows, err := pgdb.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error querying reading records", zap.Error(err))
		return nil, fmt.Errorf("error querying reading records: %w", err)
	}

	records, err := collect(rows, newReadingRow, readingEntity)
	if err != nil {
		log.Error(ctx, "error scanning reading record row", zap.Error(err))
		return nil, fmt.Errorf("error scanning reading record row: %w", err)
	}

	return records, nil
}
