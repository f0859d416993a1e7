// Package cache реализует кэш AI-анализов поверх Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	svc "bookjournal/internal/journal/ports/services"
	"bookjournal/pkg/db/redis"
	"bookjournal/pkg/logger"
)

const (
	keyPrefix  = "journal:analysis:"
	defaultTTL = time.Hour

	msgCacheHit  = "analysis cache hit"
	msgCacheMiss = "analysis cache miss"

	errCtxGet    = "failed to read analysis from cache"
	errCtxSet    = "failed to write analysis to cache"
	errCtxDelete = "failed to evict analysis from cache"
	errCtxDecode = "failed to decode cached analysis"
)

// Store - операции Redis, которые нужны кэшу. Ему соответствует *redis.Client.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

type cachedAnalysis struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	Type      string    `json:"analysis_type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisCache хранит анализы в Redis в виде JSON.
type AnalysisCache struct {
	store Store
	ttl   time.Duration
}

// NewAnalysisCache создает кэш анализов. Нулевой ttl заменяется часом.
func NewAnalysisCache(store Store, ttl time.Duration) svc.AnalysisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &AnalysisCache{store: store, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Get возвращает анализ или (nil, nil), если его нет в кэше.
func (c *AnalysisCache) Get(ctx context.Context, id string) (*entities.AIAnalysis, error) {
	log := logger.Log(ctx).With(zap.String("cache", "analysis"), zap.String("id", id))

	raw, err := c.store.Get(ctx, key(id))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			log.Debug(ctx, msgCacheMiss)
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", errCtxGet, err)
	}

	var cached cachedAnalysis
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecode, err)
	}

	log.Debug(ctx, msgCacheHit)
	return &entities.AIAnalysis{
		ID:        cached.ID,
		UserID:    cached.UserID,
		BookID:    cached.BookID,
		Type:      entities.AnalysisType(cached.Type),
		Content:   cached.Content,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// Set кладет анализ в кэш.
func (c *AnalysisCache) Set(ctx context.Context, analysis *entities.AIAnalysis) error {
	payload, err := json.Marshal(cachedAnalysis{
		ID:        analysis.ID,
		UserID:    analysis.UserID,
		BookID:    analysis.BookID,
		Type:      string(analysis.Type),
		Content:   analysis.Content,
		CreatedAt: analysis.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxSet, err)
	}

	if err := c.store.Set(ctx, key(analysis.ID), payload, c.ttl); err != nil {
		return fmt.Errorf("%s: %w", errCtxSet, err)
	}
	return nil
}

// Delete удаляет анализ из кэша.
func (c *AnalysisCache) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, key(id)); err != nil {
		return fmt.Errorf("%s: %w", errCtxDelete, err)
	}
	return nil
}

// Ping проверяет доступность Redis.
func (c *AnalysisCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
