package cache

import (
	"context"

	"bookjournal/internal/journal/domain/entities"
	svc "bookjournal/internal/journal/ports/services"
)

// Noop - кэш-заглушка для запуска без Redis. Всегда промах.
type Noop struct{}

// NewNoop создает кэш-заглушку.
func NewNoop() svc.AnalysisCache {
	return Noop{}
}

func (Noop) Get(context.Context, string) (*entities.AIAnalysis, error) { return nil, nil }

func (Noop) Set(context.Context, *entities.AIAnalysis) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }

func (Noop) Ping(context.Context) error { return nil }
