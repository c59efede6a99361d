package handlers

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/localnerve/contextdb/internal/config"
	"github.com/localnerve/contextdb/internal/middleware"
	"github.com/localnerve/contextdb/internal/services"
	"gorm.io/gorm"
)

// NewApp assembles the Fiber application: global middleware, metrics, the
// health probe, and the workspace data routes. cmd/server listens on it;
// the e2e tests drive it in process.
func NewApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberLogger.New())
	app.Use(compress.New())

	prometheus := fiberprometheus.New("contextdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	data := api.Group("/data/:workspace")
	data.Use(middleware.WorkspaceMiddleware())

	h := &DataHandler{DB: db}

	data.Get("/context/product", h.GetProductContext)
	data.Put("/context/product", h.PutProductContext)
	data.Get("/context/active", h.GetActiveContext)
	data.Put("/context/active", h.PutActiveContext)

	data.Post("/decisions", h.LogDecision)
	data.Get("/decisions", h.GetDecisions)
	data.Get("/decisions/:id", h.GetDecision)
	data.Delete("/decisions/:id", h.DeleteDecision)

	data.Post("/progress", h.LogProgress)
	data.Get("/progress", h.GetProgress)
	data.Patch("/progress/:id", h.UpdateProgress)
	data.Delete("/progress/:id", h.DeleteProgress)

	data.Post("/patterns", h.LogSystemPattern)
	data.Get("/patterns", h.GetSystemPatterns)
	data.Delete("/patterns/:id", h.DeleteSystemPattern)

	data.Post("/custom", h.LogCustomData)
	data.Get("/custom", h.GetCustomData)
	data.Delete("/custom/:id", h.DeleteCustomData)

	data.Post("/links", h.CreateLink)
	data.Get("/links", h.GetLinks)
	data.Delete("/links/:id", h.DeleteLink)

	// 404 fallback
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	return app
}

// errorHandler handles errors that escape the route handlers
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}
