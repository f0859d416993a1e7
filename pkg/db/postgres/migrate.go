package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // драйвер миграций
	_ "github.com/golang-migrate/migrate/v4/source/file"       // источник file://
	"go.uber.org/zap"

	"bookjournal/pkg/logger"
)

// Константы для сообщений миграций.
const (
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
	ErrReadSchemaVersion       = "failed to read schema version"

	LogMigrationsApplied = "database migrations applied"
	LogSchemaUpToDate    = "database schema is up to date"
)

// ErrDirtySchema возвращается, если предыдущая миграция завершилась на полпути.
// Такую базу нужно чинить вручную через `migrate force`.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate применяет миграции из sourceURL к базе по dsn и возвращает итоговую версию схемы.
// Отсутствие новых миграций ошибкой не считается.
func Migrate(ctx context.Context, dsn, sourceURL string) (uint, error) {
	log := logger.Log(ctx).With(zap.String("source", sourceURL))

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err))
		return 0, fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn(ctx, "failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	before, err := schemaVersion(m)
	if err != nil {
		log.Error(ctx, ErrReadSchemaVersion, zap.Error(err))
		return before, err
	}

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err), zap.Uint("from_version", before))
			return before, fmt.Errorf("%s: %w", ErrApplyMigrations, err)
		}
		log.Info(ctx, LogSchemaUpToDate, zap.Uint("version", before))
		return before, nil
	}

	after, err := schemaVersion(m)
	if err != nil {
		return after, err
	}
	log.Info(ctx, LogMigrationsApplied, zap.Uint("from_version", before), zap.Uint("to_version", after))
	return after, nil
}

// schemaVersion возвращает 0 для пустой базы.
func schemaVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrReadSchemaVersion, err)
	}
	if dirty {
		return version, fmt.Errorf("%w: version %d", ErrDirtySchema, version)
	}
	return version, nil
}
