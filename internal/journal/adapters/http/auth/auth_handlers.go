// Package auth содержит HTTP-обработчики регистрации и входа.
package auth

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookjournal/internal/journal/adapters/http/dto"
	"bookjournal/internal/journal/adapters/http/response"
	"bookjournal/internal/journal/ports/api"
	"bookjournal/pkg/logger"
)

// Константы сообщений.
const (
	LogHandlerRegister = "handling register request"
	LogHandlerLogin    = "handling login request"

	MsgRegistered = "registration completed"
	MsgLoggedIn   = "login completed"
)

// Handler обработчик HTTP-запросов аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Register обрабатывает запрос на регистрацию пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		return response.Error(ctx, err)
	}

	result, err := h.authUseCase.Register(requestCtx, req.Email, req.Password, req.Nickname)
	if err != nil {
		return response.Error(ctx, err)
	}

	return response.Created(ctx, dto.NewAuthResponse(result), MsgRegistered)
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		return response.Error(ctx, err)
	}

	result, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return response.Error(ctx, err)
	}

	return response.OK(ctx, dto.NewAuthResponse(result), MsgLoggedIn)
}
