// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"gonotes/internal/notes/adapters/http/health"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/adapters/http/notes"
	"gonotes/internal/notes/ports/api"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// ErrMsgRouteNotFound - ответ на запрос к несуществующему маршруту.
const ErrMsgRouteNotFound = "Route not found"

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, log *logger.Logger, noteUseCase api.NoteUseCase, checker repositories.HealthChecker) {
	notesHandler := notes.NewHandler(noteUseCase)
	healthHandler := health.NewHandler(checker)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestContextMiddleware(log))
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(cors.New())

	app.Get("/health", healthHandler.Check)

	notesRoutes := app.Group("/notes")
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:category", notesHandler.ListNotesByCategory)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Put("/:id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": ErrMsgRouteNotFound,
		})
	})
}
