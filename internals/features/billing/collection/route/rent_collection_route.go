package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/collection/controller"
)

func RentCollectionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRentCollectionController(db)

	g := api.Group("/rent-collections")
	g.Post("/generate", ctrl.Generate)
	g.Get("/", ctrl.List)
	g.Patch("/collect", ctrl.Collect)
}
