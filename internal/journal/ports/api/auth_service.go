package api

import (
	"context"

	"bookjournal/internal/journal/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, email, password, nickname string) (*services.AuthResult, error)

	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}
