package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/tenancy/tenant/controller"
)

func TenantRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTenantController(db)

	g := api.Group("/tenants")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Post("/:id/archive", ctrl.Archive)
}
