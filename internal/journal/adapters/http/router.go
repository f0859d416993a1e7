// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"bookjournal/internal/journal/adapters/http/analyses"
	"bookjournal/internal/journal/adapters/http/auth"
	"bookjournal/internal/journal/adapters/http/books"
	"bookjournal/internal/journal/adapters/http/health"
	"bookjournal/internal/journal/adapters/http/middleware"
	"bookjournal/internal/journal/adapters/http/readings"
	"bookjournal/internal/journal/adapters/http/response"
	"bookjournal/internal/journal/ports/api"
	svc "bookjournal/internal/journal/ports/services"
)

// Dependencies - сценарии и сервисы, которые обслуживает HTTP API.
type Dependencies struct {
	Tokens   svc.TokenService
	Auth     api.AuthUseCase
	Books    api.BookUseCase
	Readings api.ReadingUseCase
	Analyses api.AnalysisUseCase
	Health   api.HealthUseCase
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	authHandler := auth.NewHandler(deps.Auth)
	booksHandler := books.NewHandler(deps.Books)
	readingsHandler := readings.NewHandler(deps.Readings)
	analysesHandler := analyses.NewHandler(deps.Analyses)
	healthHandler := health.NewHandler(deps.Health)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", healthHandler.Liveness)

	apiGroup := app.Group("/api")

	// Публичные маршруты.
	apiGroup.Get("/health", healthHandler.Liveness)
	apiGroup.Get("/health/ready", healthHandler.Readiness)

	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	requireAuth := middleware.NewAuthMiddleware(deps.Tokens)

	bookRoutes := apiGroup.Group("/books", requireAuth)
	bookRoutes.Post("/", booksHandler.CreateBook)
	bookRoutes.Get("/", booksHandler.ListBooks)
	bookRoutes.Get("/search", booksHandler.SearchBooks)
	bookRoutes.Get("/genre/:genre", booksHandler.ListBooksByGenre)
	bookRoutes.Get("/:id", booksHandler.GetBook)
	bookRoutes.Put("/:id", booksHandler.UpdateBook)
	bookRoutes.Delete("/:id", booksHandler.DeleteBook)

	readingRoutes := apiGroup.Group("/reading-records", requireAuth)
	readingRoutes.Post("/", readingsHandler.CreateReadingRecord)
	readingRoutes.Get("/user/:userId", readingsHandler.ListByUser)
	readingRoutes.Get("/user/:userId/status/:status", readingsHandler.ListByUserAndStatus)
	readingRoutes.Get("/book/:bookId", readingsHandler.ListByBook)
	readingRoutes.Get("/:id", readingsHandler.GetReadingRecord)
	readingRoutes.Put("/:id", readingsHandler.UpdateReadingRecord)
	readingRoutes.Post("/:id/complete", readingsHandler.CompleteReading)
	readingRoutes.Delete("/:id", readingsHandler.DeleteReadingRecord)

	analysisRoutes := apiGroup.Group("/analyses", requireAuth)
	analysisRoutes.Post("/", analysesHandler.GenerateAnalysis)
	analysisRoutes.Post("/direct", analysesHandler.GenerateDirectAnalysis)
	analysisRoutes.Get("/user/:userId", analysesHandler.GetAnalysesByUser)
	analysisRoutes.Get("/user/:userId/type/:type", analysesHandler.GetAnalysesByUserAndType)
	analysisRoutes.Get("/book/:bookId", analysesHandler.GetAnalysesByBook)
	analysisRoutes.Get("/:id", analysesHandler.GetAnalysis)
	analysisRoutes.Delete("/:id", analysesHandler.DeleteAnalysis)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(ctx fiber.Ctx) error {
		return response.Fail(ctx, fiber.StatusNotFound, response.CodeNotFound, response.MsgRouteNotFound)
	})
}
