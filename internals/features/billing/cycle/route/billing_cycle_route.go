package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/cycle/controller"
)

func BillingCycleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBillingCycleController(db)

	g := api.Group("/billing-cycles")
	g.Post("/generate", ctrl.Generate)
	g.Get("/", ctrl.List)
	g.Get("/current", ctrl.Current)
	g.Get("/next", ctrl.Next)
}
