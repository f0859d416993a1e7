// Package main реализует точку входа службы читательского дневника.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookjournal/internal/journal/adapters/aiclient"
	"bookjournal/internal/journal/adapters/cache"
	journalhttp "bookjournal/internal/journal/adapters/http"
	"bookjournal/internal/journal/adapters/postgres"
	"bookjournal/internal/journal/adapters/services"
	"bookjournal/internal/journal/app"
	"bookjournal/internal/journal/config"
	"bookjournal/internal/journal/db"
	svc "bookjournal/internal/journal/ports/services"
	"bookjournal/pkg/db/redis"
	"bookjournal/pkg/logger"
	"bookjournal/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "JOURNAL_LOGGER_MODE"
	EnvLoggerLevel = "JOURNAL_LOGGER_LEVEL"
	envFile        = ".env"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to initialize redis cache"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "journal service started"
	LogServiceShutdownDone = "journal service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing redis connections"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "redis cache disabled, analyses are read from database"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, envFile)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		tx := repoFactory.Transactor()

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.Issuer, cfg.JWT.BCryptCost)
		aiClient := aiclient.New(cfg.AI.ClientConfig())

		log.Info(ctx, LogInitCache)
		var (
			analysisCache svc.AnalysisCache = cache.NewNoop()
			cachePinger   app.Pinger
			redisClient   *redis.Client
		)
		if cfg.Redis.Enabled {
			redisClient, err = redis.NewClient(ctx, cfg.Redis.ClientConfig())
			if err != nil {
				log.Error(ctx, ErrInitCache, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
			analysisCache = cache.NewAnalysisCache(redisClient, cfg.Redis.AnalysisTTL)
			cachePinger = analysisCache
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitUseCases)
		authUseCase := app.NewAuthUseCase(tx, repoFactory.UserRepository(),
			serviceFactory.PasswordService(), serviceFactory.TokenService())
		bookUseCase := app.NewBookUseCase(tx, repoFactory.BookRepository())
		readingUseCase := app.NewReadingUseCase(tx, repoFactory.UserRepository(),
			repoFactory.BookRepository(), repoFactory.ReadingRecordRepository())
		analysisUseCase := app.NewAnalysisUseCase(tx, repoFactory.BookRepository(),
			repoFactory.ReadingRecordRepository(), repoFactory.AnalysisRepository(), aiClient, analysisCache)
		healthUseCase := app.NewHealthUseCase(database, cachePinger, aiClient)

		log.Info(ctx, LogInitHTTPServer)
		httpServer := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		journalhttp.SetupRouter(httpServer, journalhttp.Dependencies{
			Tokens:   serviceFactory.TokenService(),
			Auth:     authUseCase,
			Books:    bookUseCase,
			Readings: readingUseCase,
			Analyses: analysisUseCase,
			Health:   healthUseCase,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := httpServer.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.Timeout,
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return httpServer.ShutdownWithContext(ctx)
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
			func(ctx context.Context) error {
				if redisClient == nil {
					return nil
				}
				log.Info(ctx, LogClosingCache)
				return redisClient.Close()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
