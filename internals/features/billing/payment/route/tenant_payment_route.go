package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/payment/controller"
)

func TenantPaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTenantPaymentController(db)

	g := api.Group("/payments")
	g.Post("/apply-cycle", ctrl.ApplyCycle)
	g.Post("/", ctrl.Record)
	g.Get("/", ctrl.List)
}
