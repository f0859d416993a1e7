// Package health содержит HTTP-обработчики проверок живости и готовности.
package health

import (
	"github.com/gofiber/fiber/v3"

	"bookjournal/internal/journal/adapters/http/dto"
	"bookjournal/internal/journal/adapters/http/response"
	"bookjournal/internal/journal/ports/api"
)

// MsgNotReady - сообщение ответа 503.
const MsgNotReady = "service is not ready"

// Handler обработчик health-проверок.
type Handler struct {
	healthUseCase api.HealthUseCase
}

// NewHandler создает новый экземпляр обработчика health-проверок.
func NewHandler(healthUseCase api.HealthUseCase) *Handler {
	return &Handler{healthUseCase: healthUseCase}
}

// Liveness сообщает, что процесс жив.
func (h *Handler) Liveness(ctx fiber.Ctx) error {
	return response.OK(ctx, dto.NewLivenessResponse(h.healthUseCase.Liveness(ctx.Context())))
}

// Readiness проверяет зависимости и отвечает 503, если хотя бы одна недоступна.
func (h *Handler) Readiness(ctx fiber.Ctx) error {
	readiness := h.healthUseCase.Readiness(ctx.Context())
	body := dto.NewReadinessResponse(readiness)
	if !readiness.Ready() {
		return response.Unavailable(ctx, body, MsgNotReady)
	}
	return response.OK(ctx, body)
}
