package config

import "time"

// JWTConfig содержит настройки для JWT токенов и хеширования паролей.
type JWTConfig struct {
	Secret         string        `env:"JOURNAL_JWT_SECRET" env-required:"true"`
	AccessTokenTTL time.Duration `env:"JOURNAL_JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
	Issuer         string        `env:"JOURNAL_JWT_ISSUER" env-default:"book-ai-backend"`
	BCryptCost     int           `env:"JOURNAL_JWT_BCRYPT_COST" env-default:"10"`
}
