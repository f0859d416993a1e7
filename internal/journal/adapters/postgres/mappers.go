package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookjournal/internal/journal/domain/entities"
)

// Колонки таблиц в порядке сканирования.
const (
	userColumns     = "id, email, password, nickname, created_at, updated_at"
	bookColumns     = "id, title, author, isbn, genre, description, content, user_id, created_at, updated_at"
	analysisColumns = "id, user_id, book_id, analysis_type, content, created_at"
)

type userRow struct {
	ID        int64
	Email     string
	Password  string
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *userRow) dest() []any {
	return []any{&r.ID, &r.Email, &r.Password, &r.Nickname, &r.CreatedAt, &r.UpdatedAt}
}

func (r *userRow) toEntity() *entities.User {
	return &entities.User{
		ID:        r.ID,
		Email:     r.Email,
		Password:  r.Password,
		Nickname:  r.Nickname,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type bookRow struct {
	ID          int64
	Title       string
	Author      string
	ISBN        *string
	Genre       string
	Description string
	Content     string
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *bookRow) dest() []any {
	return []any{
		&r.ID, &r.Title, &r.Author, &r.ISBN, &r.Genre,
		&r.Description, &r.Content, &r.UserID, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *bookRow) toEntity() *entities.Book {
	b := &entities.Book{
		ID:          r.ID,
		Title:       r.Title,
		Author:      r.Author,
		Genre:       entities.Genre(r.Genre),
		Description: r.Description,
		Content:     r.Content,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.ISBN != nil {
		b.ISBN = *r.ISBN
	}
	return b
}

type readingRow struct {
	ID        int64
	Content   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	user      userRow
	book      bookRow
}

func (r *readingRow) dest() []any {
	d := []any{&r.ID, &r.Content, &r.Status, &r.CreatedAt, &r.UpdatedAt}
	d = append(d, r.user.dest()...)
	return append(d, r.book.dest()...)
}

func (r *readingRow) toEntity() *entities.ReadingRecord {
	return &entities.ReadingRecord{
		ID:        r.ID,
		User:      r.user.toEntity(),
		Book:      r.book.toEntity(),
		Content:   r.Content,
		Status:    entities.ReadingStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type analysisRow struct {
	ID        string
	UserID    int64
	BookID    int64
	Type      string
	Content   string
	CreatedAt time.Time
}

func (r *analysisRow) dest() []any {
	return []any{&r.ID, &r.UserID, &r.BookID, &r.Type, &r.Content, &r.CreatedAt}
}

func (r *analysisRow) toEntity() *entities.AIAnalysis {
	return &entities.AIAnalysis{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Type:      entities.AnalysisType(r.Type),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

// uniqueViolation - код ошибки Postgres при нарушении UNIQUE.
const uniqueViolation = "23505"

// isUniqueViolation сообщает, нарушено ли ограничение уникальности.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// nullableString превращает пустую строку в NULL.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type rowDest interface {
	dest() []any
}

// collect сканирует все строки, создавая новую строку-приемник через newRow.
func collect[R rowDest, E any](rows pgx.Rows, newRow func() R, toEntity func(R) E) ([]E, error) {
	defer rows.Close()

	result := make([]E, 0)
	for rows.Next() {
		row := newRow()
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		result = append(result, toEntity(row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
