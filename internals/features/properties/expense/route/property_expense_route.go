package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/properties/expense/controller"
)

func ExpenseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExpenseController(db)

	g := api.Group("/property-expenses")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Delete("/:id", ctrl.Delete)
}
