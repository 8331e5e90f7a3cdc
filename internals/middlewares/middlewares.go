package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the base middleware chain. Auth middleware is
// attached per route group, not here.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
