package config

import (
	"fmt"
	"time"

	"bookjournal/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host              string        `env:"JOURNAL_POSTGRES_HOST" env-default:"localhost"`
	Port              int           `env:"JOURNAL_POSTGRES_PORT" env-default:"5432"`
	User              string        `env:"JOURNAL_POSTGRES_USER" env-default:"postgres"`
	Password          string        `env:"JOURNAL_POSTGRES_PASSWORD" env-default:"postgres"`
	Database          string        `env:"JOURNAL_POSTGRES_DB" env-default:"journal"`
	MinConn           int           `env:"JOURNAL_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn           int           `env:"JOURNAL_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime   time.Duration `env:"JOURNAL_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime   time.Duration `env:"JOURNAL_POSTGRES_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthCheckPeriod time.Duration `env:"JOURNAL_POSTGRES_HEALTH_CHECK_PERIOD" env-default:"1m"`
	ConnectTimeout    time.Duration `env:"JOURNAL_POSTGRES_CONNECT_TIMEOUT" env-default:"5s"`
	MigrationsDir     string        `env:"JOURNAL_MIGRATIONS_DIR" env-default:"./migrations/journal"`
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}

// PoolConfig собирает настройки пула соединений.
func (p *PostgresConfig) PoolConfig() postgres.PoolConfig {
	return postgres.PoolConfig{
		DSN:               p.GetDSN(),
		MinConns:          int32(p.MinConn), // #nosec G115 -- границы проверяются в Validate
		MaxConns:          int32(p.MaxConn), // #nosec G115 -- границы проверяются в Validate
		MaxConnLifetime:   p.MaxConnLifetime,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
		ConnectTimeout:    p.ConnectTimeout,
	}
}
