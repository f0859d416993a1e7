package services

import (
	"context"
	"time"

	"bookjournal/internal/journal/domain/services"
)

// TokenService определяет интерфейс для операций с токенами JWT.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID int64, email string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (*services.JWTClaims, error)
}
