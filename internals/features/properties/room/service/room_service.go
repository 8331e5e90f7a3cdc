package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/properties/room/model"
)

// RoomOwnedBy loads a room and checks the room's property belongs to the user.
func RoomOwnedBy(db *gorm.DB, roomID, userID uuid.UUID) (*model.Room, error) {
	var r model.Room
	err := db.
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("rooms.id = ? AND properties.user_id = ?", roomID, userID).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load room")
	}
	return &r, nil
}
