package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookjournal/internal/journal/adapters/http/response"
	"bookjournal/internal/journal/domain/entities"
	svc "bookjournal/internal/journal/ports/services"
	"bookjournal/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"

	bearerPrefix = "Bearer "
)

type userIDKeyType struct{}

var userIDKey = userIDKeyType{}

// WithUserID кладет идентификатор аутентифицированного пользователя в контекст.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext извлекает идентификатор пользователя, положенный NewAuthMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

// NewAuthMiddleware проверяет Bearer-токен и кладет идентификатор пользователя в контекст запроса.
func NewAuthMiddleware(tokens svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return unauthorized(ctx, ErrorNoAuthHeader)
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return unauthorized(ctx, ErrorInvalidTokenFormat)
		}

		claims, err := tokens.ValidateAccessToken(requestCtx, strings.TrimSpace(token))
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return unauthorized(ctx, ErrorInvalidToken)
		}

		ctx.SetContext(WithUserID(requestCtx, claims.UserID))
		return ctx.Next()
	}
}

func unauthorized(ctx fiber.Ctx, message string) error {
	return response.Fail(ctx, fiber.StatusUnauthorized, response.CodeAuthenticationFailed, message)
}

// ErrUnauthenticated возвращается, если в контексте нет аутентифицированного пользователя.
var ErrUnauthenticated = entities.NewAuthenticationError("authentication required")

// CurrentUserID возвращает идентификатор текущего пользователя или ErrUnauthenticated.
func CurrentUserID(ctx context.Context) (int64, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}
	return id, nil
}
