package config

import (
	"time"

	"bookjournal/pkg/db/redis"
)

// RedisConfig представляет конфигурацию кэша анализов.
type RedisConfig struct {
	Enabled      bool          `env:"JOURNAL_REDIS_ENABLED" env-default:"false"`
	Host         string        `env:"JOURNAL_REDIS_HOST" env-default:"localhost"`
	Port         int           `env:"JOURNAL_REDIS_PORT" env-default:"6379"`
	Password     string        `env:"JOURNAL_REDIS_PASSWORD" env-default:""`
	DB           int           `env:"JOURNAL_REDIS_DB" env-default:"0"`
	PoolSize     int           `env:"JOURNAL_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle      int           `env:"JOURNAL_REDIS_MIN_IDLE" env-default:"2"`
	DialTimeout  time.Duration `env:"JOURNAL_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout  time.Duration `env:"JOURNAL_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout time.Duration `env:"JOURNAL_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	AnalysisTTL  time.Duration `env:"JOURNAL_REDIS_ANALYSIS_TTL" env-default:"1h"`
}

// ClientConfig преобразует настройки в конфигурацию клиента Redis.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:         c.Host,
		Port:         c.Port,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     c.PoolSize,
		MinIdle:      c.MinIdle,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
}
