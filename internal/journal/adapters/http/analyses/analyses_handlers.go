// Package analyses содержит HTTP-обработчики AI-анализов.
package analyses

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookjournal/internal/journal/adapters/http/dto"
	"bookjournal/internal/journal/adapters/http/response"
	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/ports/api"
	"bookjournal/pkg/logger"
)

// Константы сообщений.
const (
	MsgAnalysisCompleted       = "analysis completed"
	MsgDirectAnalysisCompleted = "direct analysis completed"
	MsgAnalysisDeleted         = "analysis deleted"

	paramID     = "id"
	paramUserID = "userId"
	paramBookID = "bookId"
	paramType   = "type"
	fieldType   = "analysisType"
)

// Handler обработчик HTTP-запросов для работы с AI-анализами.
type Handler struct {
	analysisUseCase api.AnalysisUseCase
}

// NewHandler создает новый экземпляр обработчика анализов.
func NewHandler(analysisUseCase api.AnalysisUseCase) *Handler {
	return &Handler{analysisUseCase: analysisUseCase}
}

// GenerateAnalysis запрашивает анализ завершенной записи о чтении.
func (h *Handler) GenerateAnalysis(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, "handling analysis request", zap.String("handler", "Handler.GenerateAnalysis"))

	var req dto.AnalysisRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		return response.Error(ctx, err)
	}
	analysisType, err := entities.ParseAnalysisType(req.AnalysisType)
	if err != nil {
		return response.Error(ctx, response.InvalidField(fieldType, err))
	}

	analysis, err := h.analysisUseCase.GenerateAnalysis(requestCtx, req.ReadingRecordID, analysisType)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewAnalysisResponse(analysis), MsgAnalysisCompleted)
}

// GenerateDirectAnalysis запрашивает анализ произвольного текста по книге.
func (h *Handler) GenerateDirectAnalysis(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, "handling direct analysis request",
		zap.String("handler", "Handler.GenerateDirectAnalysis"))

	var req dto.DirectAnalysisRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		return response.Error(ctx, err)
	}
	analysisType, err := entities.ParseAnalysisType(req.AnalysisType)
	if err != nil {
		return response.Error(ctx, response.InvalidField(fieldType, err))
	}

	analysis, err := h.analysisUseCase.GenerateDirectAnalysis(requestCtx, req.BookID, req.Content, analysisType)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewAnalysisResponse(analysis), MsgDirectAnalysisCompleted)
}

// GetAnalysis возвращает анализ по ID.
func (h *Handler) GetAnalysis(ctx fiber.Ctx) error {
	analysis, err := h.analysisUseCase.GetAnalysis(ctx.Context(), ctx.Params(paramID))
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewAnalysisResponse(analysis))
}

// GetAnalysesByUser возвращает анализы пользователя.
func (h *Handler) GetAnalysesByUser(ctx fiber.Ctx) error {
	userID, err := response.ParamID(ctx, paramUserID)
	if err != nil {
		return response.Error(ctx, err)
	}

	analyses, err := h.analysisUseCase.GetAnalysesByUser(ctx.Context(), userID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewAnalysisResponses(analyses))
}

// GetAnalysesByBook возвращает анализы книги.
func (h *Handler) GetAnalysesByBook(ctx fiber.Ctx) error {
	bookID, err := response.ParamID(ctx, paramBookID)
	if err != nil {
		return response.Error(ctx, err)
	}

	analyses, err := h.analysisUseCase.GetAnalysesByBook(ctx.Context(), bookID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewAnalysisResponses(analyses))
}

// GetAnalysesByUserAndType возвращает анализы пользователя указанного типа.
func (h *Handler) GetAnalysesByUserAndType(ctx fiber.Ctx) error {
	userID, err := response.ParamID(ctx, paramUserID)
	if err != nil {
		return response.Error(ctx, err)
	}
	analysisType, err := entities.ParseAnalysisType(ctx.Params(paramType))
	if err != nil {
		return response.Error(ctx, response.InvalidField(paramType, err))
	}

	analyses, err := h.analysisUseCase.GetAnalysesByUserAndType(ctx.Context(), userID, analysisType)
	if err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, dto.NewAnalysisResponses(analyses))
}

// DeleteAnalysis удаляет анализ.
func (h *Handler) DeleteAnalysis(ctx fiber.Ctx) error {
	if err := h.analysisUseCase.DeleteAnalysis(ctx.Context(), ctx.Params(paramID)); err != nil {
		return response.Error(ctx, err)
	}
	return response.OK(ctx, nil, MsgAnalysisDeleted)
}
