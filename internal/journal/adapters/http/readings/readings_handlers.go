// Package readings содержит HTTP-обработчики записей о чтении.
package readings

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
	MsgReadingCreated   = "reading record created"
	MsgReadingUpdated   = "reading record updated"
	MsgReadingCompleted = "reading completed"
	MsgReadingDeleted   = "reading record deleted"

	paramID     = "id"
	paramUserID = "userId"
	paramBookID = "bookId"
	paramStatus = "status"
)

// Handler обработчик HTTP-запросов для работы с записями о чтении.
type Handler struct {
	readingUseCase api.ReadingUseCase
}

// NewHandler создает новый экземпляр обработчика записей о чтении.
func NewHandler(readingUseCase api.ReadingUseCase) *Handler {
	return &Handler{readingUseCase: readingUseCase}
}

// CreateReadingRecord начинает чтение книги текущим пользователем.
func (h *Handler) CreateReadingRecord(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, "handling create reading record request",
		zap.String("handler", "Handler.CreateReadingRecord"))

	userID, err := middleware.CurrentUserID(requestCtx)
	if err != nil {
		return response.Error(ctx, err)
	}

	var req dto.CreateReadingRecordRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		return response.Error(ctx, err)
	}

	record, err := h.readingUseCase.CreateReadingRecord(requestCtx, userID, req.BookID, req.Content)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.Created(ctx, dto.NewReadingRecordResponse(record), MsgReadingCreated)
}

// UpdateReadingRecord меняет заметку о чтении.
func (h *Handler) UpdateReadingRecord(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	recordID, err := response.ParamID(ctx, paramID)
	if err != nil {
		return response.Error(ctx, err)
	}

	var req dto.UpdateReadingRecordRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		return response.Error(ctx, err)
	}

	record, err := h.readingUseCase.UpdateReadingRecord(requestCtx, recordID, req.Content)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewReadingRecordResponse(record), MsgReadingUpdated)
}

// CompleteReading завершает чтение.
func (h *Handler) CompleteReading(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	recordID, err := response.ParamID(ctx, paramID)
	if err != nil {
		return response.Error(ctx, err)
	}

	record, err := h.readingUseCase.CompleteReading(requestCtx, recordID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewReadingRecordResponse(record), MsgReadingCompleted)
}

// GetReadingRecord возвращает запись по ID.
func (h *Handler) GetReadingRecord(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	recordID, err := response.ParamID(ctx, paramID)
	if err != nil {
		return response.Error(ctx, err)
	}

	record, err := h.readingUseCase.GetReadingRecord(requestCtx, recordID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewReadingRecordResponse(record))
}

// ListByUser возвращает записи пользователя.
func (h *Handler) ListByUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := response.ParamID(ctx, paramUserID)
	if err != nil {
		return response.Error(ctx, err)
	}

	records, err := h.readingUseCase.ListByUser(requestCtx, userID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewReadingRecordResponses(records))
}

// ListByUserAndStatus возвращает записи пользователя с указанным статусом.
func (h *Handler) ListByUserAndStatus(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := response.ParamID(ctx, paramUserID)
	if err != nil {
		return response.Error(ctx, err)
	}
	status, err := entities.ParseReadingStatus(ctx.Params(paramStatus))
	if err != nil {
		return response.Error(ctx, response.InvalidField(paramStatus, err))
	}

	records, err := h.readingUseCase.ListByUserAndStatus(requestCtx, userID, status)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewReadingRecordResponses(records))
}

// ListByBook возвращает записи по книге.
func (h *Handler) ListByBook(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	bookID, err := response.ParamID(ctx, paramBookID)
	if err != nil {
		return response.Error(ctx, err)
	}

	records, err := h.readingUseCase.ListByBook(requestCtx, bookID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewReadingRecordResponses(records))
}

// DeleteReadingRecord удаляет запись.
func (h *Handler) DeleteReadingRecord(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	recordID, err := response.ParamID(ctx, paramID)
	if err != nil {
		return response.Error(ctx, err)
	}

	if err := h.readingUseCase.DeleteReadingRecord(requestCtx, recordID); err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, nil, MsgReadingDeleted)
}
