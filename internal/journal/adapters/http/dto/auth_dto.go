// Package dto содержит объекты передачи данных HTTP API и их преобразование из сущностей.
package dto

import (
	"time"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/domain/services"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname" validate:"required,max=100"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse содержит публичные данные пользователя.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse возвращается при регистрации и входе.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
}

// NewUserResponse строит ответ из сущности пользователя.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewAuthResponse строит ответ из результата аутентификации.
func NewAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		User:      NewUserResponse(result.User),
		Token:     result.Token,
		TokenType: result.TokenType,
	}
}
