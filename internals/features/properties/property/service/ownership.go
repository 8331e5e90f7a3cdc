package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/properties/property/model"
)

// PropertyOwnedBy loads a property and checks it belongs to the user.
// Ownership scoping is the only access control in the system.
func PropertyOwnedBy(db *gorm.DB, propertyID, userID uuid.UUID) (*model.Property, error) {
	var p model.Property
	if err := db.First(&p, "id = ?", propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Property not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load property")
	}
	if p.UserID != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Property not found")
	}
	return &p, nil
}
