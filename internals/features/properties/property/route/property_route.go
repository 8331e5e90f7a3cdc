package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/properties/property/controller"
)

func PropertyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPropertyController(db)

	g := api.Group("/properties")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
