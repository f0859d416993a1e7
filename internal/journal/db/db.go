// Package db инициализирует базу данных сервиса: применяет миграции и открывает пул соединений.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"bookjournal/internal/journal/config"
	"bookjournal/pkg/db/postgres"
	"bookjournal/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing journal database"
	LogDBInitialized     = "journal database initialized successfully"
	LogMigrationStarting = "starting database migrations for journal service"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations = "failed to apply journal database migrations"
	ErrDBConnection = "failed to connect to journal database"
	ErrGetPath      = "failed to get path"
)

// DB представляет соединение с базой данных сервиса.
type DB struct {
	database *postgres.Database
}

// New инициализирует соединение с базой данных, предварительно применив миграции.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	migrationsPath, err := sourceURL(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ErrDBMigrations, ErrGetPath, err)
	}

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	version, err := postgres.Migrate(ctx, cfg.GetConnectionURL(), migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.PoolConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized, zap.Uint("schema_version", version))
	return &DB{database: database}, nil
}

func sourceURL(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return "file://" + dir, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений для репозиториев и менеджера транзакций.
func (db *DB) Pool() postgres.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}
