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

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool pgdb.Querier
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool pgdb.Querier) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (email, password, nickname, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns

	var row userRow
	err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query,
		user.Email,
		user.Password,
		user.Nickname,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(row.dest()...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "email already exists")
			return nil, entities.ErrEmailAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return row.toEntity(), nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var row userRow
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return row.toEntity(), nil
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var row userRow
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query, email).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return row.toEntity(), nil
}

// ExistsByEmail проверяет, занят ли email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "ExistsByEmail"))

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query, email).Scan(&exists); err != nil {
		log.Error(ctx, "error checking email existence", zap.Error(err))
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}
