package config

import (
	"time"

	"bookjournal/internal/journal/adapters/aiclient"
)

// AIConfig содержит адрес и таймауты сервиса генерации анализов.
type AIConfig struct {
	BaseURL       string        `env:"JOURNAL_AI_BASE_URL" env-default:"http://localhost:8000"`
	Timeout       time.Duration `env:"JOURNAL_AI_TIMEOUT" env-default:"60s"`
	HealthTimeout time.Duration `env:"JOURNAL_AI_HEALTH_TIMEOUT" env-default:"3s"`
}

// ClientConfig преобразует настройки в конфигурацию AI-клиента.
func (c *AIConfig) ClientConfig() aiclient.Config {
	return aiclient.Config{
		BaseURL:       c.BaseURL,
		Timeout:       c.Timeout,
		HealthTimeout: c.HealthTimeout,
	}
}
