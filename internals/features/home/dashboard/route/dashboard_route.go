package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/home/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	api.Get("/dashboard", ctrl.Overview)
}
