package repositories

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
)

// UserRepository определяет интерфейс хранения пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
