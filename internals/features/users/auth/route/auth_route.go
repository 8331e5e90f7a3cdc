package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/users/auth/controller"
	"github.com/Harshrawat27/rently/internals/middlewares"
	authMiddleware "github.com/Harshrawat27/rently/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)

	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ctrl.Me)
	protected.Post("/logout", ctrl.Logout)
}
