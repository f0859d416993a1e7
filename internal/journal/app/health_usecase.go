package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bookjournal/internal/journal/domain/services"
	"bookjournal/internal/journal/ports/api"
	svc "bookjournal/internal/journal/ports/services"
	"bookjournal/pkg/logger"
)

// Имена компонентов в ответе готовности.
const (
	ComponentDatabase = "database"
	ComponentCache    = "cache"
	ComponentAI       = "ai_service"

	msgComponentDown = "component is not ready"
)

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthUseCaseImpl реализует интерфейс HealthUseCase.
type HealthUseCaseImpl struct {
	db       Pinger
	cache    Pinger
	aiClient svc.AIClient
	now      func() time.Time
}

// NewHealthUseCase создает сервис проверок. cache может быть nil, если Redis отключен.
func NewHealthUseCase(db Pinger, cache Pinger, aiClient svc.AIClient) api.HealthUseCase {
	return &HealthUseCaseImpl{
		db:       db,
		cache:    cache,
		aiClient: aiClient,
		now:      time.Now,
	}
}

// Liveness сообщает, что процесс жив.
func (h *HealthUseCaseImpl) Liveness(_ context.Context) *services.Liveness {
	return &services.Liveness{
		Status:    services.StatusUp,
		Timestamp: h.now(),
		Service:   services.ServiceName,
	}
}

// Readiness параллельно опрашивает зависимости.
func (h *HealthUseCaseImpl) Readiness(ctx context.Context) *services.Readiness {
	log := logger.Log(ctx)

	var mu sync.Mutex
	components := make(map[string]string, 3)
	report := func(name string, up bool, err error) {
		status := services.StatusUp
		if !up {
			status = services.StatusDown
			log.Warn(ctx, msgComponentDown, zap.String("component", name), zap.Error(err))
		}
		mu.Lock()
		components[name] = status
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := h.db.Ping(gctx)
		report(ComponentDatabase, err == nil, err)
		return nil
	})
	if h.cache != nil {
		g.Go(func() error {
			err := h.cache.Ping(gctx)
			report(ComponentCache, err == nil, err)
			return nil
		})
	}
	g.Go(func() error {
		report(ComponentAI, h.aiClient.IsHealthy(gctx), nil)
		return nil
	})
	_ = g.Wait()

	status := services.StatusUp
	for _, s := range components {
		if s != services.StatusUp {
			status = services.StatusDown
			break
		}
	}
	return &services.Readiness{Status: status, Components: components}
}
