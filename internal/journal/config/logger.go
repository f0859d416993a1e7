package config

import (
	"time"

	"bookjournal/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `env:"JOURNAL_LOGGER_LEVEL" env-default:"info"`
	Mode  string `env:"JOURNAL_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment получает строку режима в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}

// ShutdownConfig содержит настройки для graceful shutdown.
type ShutdownConfig struct {
	Timeout time.Duration `env:"JOURNAL_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s"`
}
