// Package response формирует единый конверт ответов API и сопоставляет ошибки с HTTP-статусами.
package response

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/pkg/logger"
)

// Коды ошибок в конверте ответа.
const (
	CodeInvalidArgument      = "INVALID_ARGUMENT"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeIllegalState         = "ILLEGAL_STATE"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeMissingParameter     = "MISSING_PARAMETER"
	CodeInternalServerError  = "INTERNAL_SERVER_ERROR"
	CodeNotFound             = "NOT_FOUND"
)

// Сообщения для клиента.
const (
	MsgInternalServerError = "internal server error"
	MsgValidationFailed    = "invalid request"
	MsgRouteNotFound       = "route not found"
	MsgMissingParameter    = "missing required parameter: "

	msgUnexpectedError = "unexpected error"
	msgClientError     = "request rejected"
	errSendResponse    = "error sending response"
)

// Envelope - конверт всех ответов API.
type Envelope struct {
	Success     bool         `json:"success"`
	Data        any          `json:"data,omitempty"`
	Message     string       `json:"message,omitempty"`
	ErrorCode   string       `json:"errorCode,omitempty"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

// FieldError описывает ошибку проверки одного поля запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError - ошибка формы запроса: тело не разобрано, поле не прошло проверку или параметр пути неверен.
type ValidationError struct {
	Fields []FieldError
	cause  error
}

// NewValidationError создает ошибку проверки запроса.
func NewValidationError(cause error, fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields, cause: cause}
}

func (e *ValidationError) Error() string {
	if e.cause != nil {
		return "validation failed: " + e.cause.Error()
	}
	return "validation failed"
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// MissingParameterError - отсутствует обязательный query-параметр.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return MsgMissingParameter + e.Name
}

// OK отправляет успешный ответ со статусом 200.
func OK(ctx fiber.Ctx, data any, message ...string) error {
	return send(ctx, fiber.StatusOK, data, message...)
}

// Created отправляет успешный ответ со статусом 201.
func Created(ctx fiber.Ctx, data any, message ...string) error {
	return send(ctx, fiber.StatusCreated, data, message...)
}

// Unavailable отправляет ответ 503 с данными о состоянии.
func Unavailable(ctx fiber.Ctx, data any, message string) error {
	return write(ctx, fiber.StatusServiceUnavailable, Envelope{Data: data, Message: message})
}

// Fail отправляет конверт ошибки с указанным статусом.
func Fail(ctx fiber.Ctx, status int, code, message string) error {
	return write(ctx, status, Envelope{Message: message, ErrorCode: code})
}

// Error сопоставляет ошибку с HTTP-статусом и кодом. Подробности непредвиденных ошибок
// только логируются.
func Error(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("path", ctx.Path()))

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		log.Debug(requestCtx, msgClientError, zap.Error(err))
		return write(ctx, fiber.StatusBadRequest, Envelope{
			Message:     MsgValidationFailed,
			ErrorCode:   CodeValidationFailed,
			FieldErrors: validationErr.Fields,
		})
	}

	var missingErr *MissingParameterError
	if errors.As(err, &missingErr) {
		log.Debug(requestCtx, msgClientError, zap.Error(err))
		return Fail(ctx, fiber.StatusBadRequest, CodeMissingParameter, missingErr.Error())
	}

	var domainErr *entities.DomainError
	if errors.As(err, &domainErr) {
		log.Debug(requestCtx, msgClientError, zap.Error(err))
		switch {
		case errors.Is(domainErr, entities.ErrAuthentication):
			return Fail(ctx, fiber.StatusUnauthorized, CodeAuthenticationFailed, domainErr.Error())
		case errors.Is(domainErr, entities.ErrIllegalState):
			return Fail(ctx, fiber.StatusConflict, CodeIllegalState, domainErr.Error())
		default:
			return Fail(ctx, fiber.StatusBadRequest, CodeInvalidArgument, domainErr.Error())
		}
	}

	log.Error(requestCtx, msgUnexpectedError, zap.Error(err))
	return Fail(ctx, fiber.StatusInternalServerError, CodeInternalServerError, MsgInternalServerError)
}

func send(ctx fiber.Ctx, status int, data any, message ...string) error {
	env := Envelope{Success: true, Data: data}
	if len(message) > 0 {
		env.Message = message[0]
	}
	return write(ctx, status, env)
}

func write(ctx fiber.Ctx, status int, env Envelope) error {
	if err := ctx.Status(status).JSON(env); err != nil {
		return fmt.Errorf("%s: %w", errSendResponse, err)
	}
	return nil
}
