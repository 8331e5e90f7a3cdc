package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/tenancy/meter/controller"
)

func MeterReadingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMeterReadingController(db)

	g := api.Group("/meter-readings")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
}
