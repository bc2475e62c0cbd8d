package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type AppConfig struct {
	Name             string
	CORSOrigins      string
	Production       bool
	ImproveRateLimit int
	// Views renders the preview page.
	Views fiber.Views
}

// NewApp builds the fiber app with middleware and every route mounted.
func NewApp(cfg AppConfig, h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: ErrorHandler,
		Views:        cfg.Views,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !cfg.Production,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	h.RegisterRoutes(app, RateLimiter(cfg.ImproveRateLimit, 1*time.Minute))
	return app
}
