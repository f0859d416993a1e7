package services

import (
	"errors"

	"bookjournal/internal/journal/domain/entities"
)

// TokenTypeBearer - тип выдаваемого токена.
const TokenTypeBearer = "Bearer"

// ErrTokenGenerationFailed возвращается, если не удалось выпустить токен.
var ErrTokenGenerationFailed = errors.New("failed to generate authentication token")

// AuthResult - результат регистрации или входа.
type AuthResult struct {
	User      *entities.User
	Token     string
	TokenType string
}
