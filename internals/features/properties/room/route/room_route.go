package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/properties/room/controller"
)

func RoomRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRoomController(db)

	g := api.Group("/rooms")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
