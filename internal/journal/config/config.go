// Package config содержит конфигурацию сервиса читательского дневника.
package config

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	pkgconfig "bookjournal/pkg/config"
	"bookjournal/pkg/logger"
)

// ServiceName - имя сервиса в логах загрузки конфигурации.
const ServiceName = "journal"

// MinJWTSecretLength - минимальная длина секрета подписи токенов в байтах.
const MinJWTSecretLength = 32

const (
	LogConfigLoaded         = "journal configuration loaded"
	ErrFailedValidateConfig = "invalid configuration"
)

// ErrJWTSecretTooShort возвращается, если секрет подписи короче MinJWTSecretLength.
var ErrJWTSecretTooShort = errors.New("jwt secret must be at least 32 bytes")

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	AI       AIConfig
	Logging  LoggingConfig
	Shutdown ShutdownConfig
}

// Load загружает конфигурацию из env-файлов и переменных окружения и проверяет ее.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	log := logger.Log(ctx)

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFiles...)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		log.Error(ctx, ErrFailedValidateConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedValidateConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("ai_base_url", cfg.AI.BaseURL),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("shutdown_timeout", cfg.Shutdown.Timeout))

	return cfg, nil
}

// Validate проверяет значения, которые нельзя выразить тегами.
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < MinJWTSecretLength {
		return ErrJWTSecretTooShort
	}
	if c.Postgres.MinConn < 0 || c.Postgres.MaxConn < 1 || c.Postgres.MaxConn > math.MaxInt32 {
		return fmt.Errorf("postgres pool size out of range: min_conn=%d max_conn=%d", c.Postgres.MinConn, c.Postgres.MaxConn)
	}
	if c.Postgres.MinConn > c.Postgres.MaxConn {
		return fmt.Errorf("postgres min_conn (%d) exceeds max_conn (%d)", c.Postgres.MinConn, c.Postgres.MaxConn)
	}
	return nil
}
