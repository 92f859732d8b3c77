package routes

import (
	"github.com/anjiri1684/error_paper/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App, health *handlers.HealthHandler) {
	app.Get("/health", health.Health)
	app.Get("/health/ready", health.Ready)
	app.Get("/health/live", health.Live)
}
