// Package books содержит HTTP-обработчики для управления книгами текущего пользователя.
package books

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookjournal/internal/journal/adapters/http/dto"
	"bookjournal/internal/journal/adapters/http/middleware"
	"bookjournal/internal/journal/adapters/http/response"
	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/ports/api"
	"bookjournal/pkg/logger"
)

// Константы сообщений.
const (
	MsgBookCreated = "book created"
	MsgBookUpdated = "book updated"
	MsgBookDeleted = "book deleted"

	paramID    = "id"
	paramGenre = "genre"
	queryTitle = "title"
	fieldGenre = "genre"
)

// Handler обработчик HTTP-запросов для работы с книгами.
type Handler struct {
	bookUseCase api.BookUseCase
}

// NewHandler создает новый экземпляр обработчика книг.
func NewHandler(bookUseCase api.BookUseCase) *Handler {
	return &Handler{bookUseCase: bookUseCase}
}

// CreateBook обрабатывает запрос на создание книги.
func (h *Handler) CreateBook(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, "handling create book request", zap.String("handler", "Handler.CreateBook"))

	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}

	input, err := bookInput(ctx)
	if err != nil {
		return response.Error(ctx, err)
	}

	book, err := h.bookUseCase.CreateBook(requestCtx, userID, input)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.Created(ctx, dto.NewBookResponse(book), MsgBookCreated)
}

// ListBooks возвращает книги текущего пользователя.
func (h *Handler) ListBooks(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}

	books, err := h.bookUseCase.ListBooks(requestCtx, userID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewBookResponses(books))
}

// GetBook возвращает книгу текущего пользователя.
func (h *Handler) GetBook(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}
	bookID, err := response.ParamID(ctx, paramID)
	if err != nil {
		return response.Error(ctx, err)
	}

	book, err := h.bookUseCase.GetBook(requestCtx, userID, bookID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewBookResponse(book))
}

// UpdateBook обрабатывает запрос на изменение книги.
func (h *Handler) UpdateBook(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, "handling update book request", zap.String("handler", "Handler.UpdateBook"))

	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}
	bookID, err := response.ParamID(ctx, paramID)
	if err != nil {
		return response.Error(ctx, err)
	}

	input, err := bookInput(ctx)
	if err != nil {
		return response.Error(ctx, err)
	}

	book, err := h.bookUseCase.UpdateBook(requestCtx, userID, bookID, input)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewBookResponse(book), MsgBookUpdated)
}

// DeleteBook обрабатывает запрос на удаление книги.
func (h *Handler) DeleteBook(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}
	bookID, err := response.ParamID(ctx, paramID)
	if err != nil {
		return response.Error(ctx, err)
	}

	if err := h.bookUseCase.DeleteBook(requestCtx, userID, bookID); err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, nil, MsgBookDeleted)
}

// ListBooksByGenre возвращает книги текущего пользователя указанного жанра.
func (h *Handler) ListBooksByGenre(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}

	genre, err := entities.ParseGenre(ctx.Params(paramGenre))
	if err != nil {
		return response.Error(ctx, response.InvalidField(paramGenre, err))
	}

	books, err := h.bookUseCase.ListBooksByGenre(requestCtx, userID, genre)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewBookResponses(books))
}

// SearchBooks ищет книги текущего пользователя по части названия.
func (h *Handler) SearchBooks(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}

	title, err := response.RequiredQuery(ctx, queryTitle)
	if err != nil {
		return response.Error(ctx, err)
	}

	books, err := h.bookUseCase.SearchBooks(requestCtx, userID, title)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewBookResponses(books))
}

func bookInput(ctx fiber.Ctx) (api.BookInput, error) {
	var req dto.BookRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		return api.BookInput{}, err
	}
	genre, err := entities.ParseGenre(req.Genre)
	if err != nil {
		return api.BookInput{}, response.InvalidField(fieldGenre, err)
	}
	return req.Input(genre), nil
}
