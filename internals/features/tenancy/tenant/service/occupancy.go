package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
	"github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
)

// SetRoomOccupancy is the single write path for rooms.is_occupied. It is
// called from tenant add and tenant archive only; nothing else may touch the
// flag.
func SetRoomOccupancy(tx *gorm.DB, roomID uuid.UUID, occupied bool) error {
	res := tx.Model(&roomModel.Room{}).
		Where("id = ?", roomID).
		Update("is_occupied", occupied)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update room occupancy")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Room not found")
	}
	return nil
}

// AddTenant creates a tenant in a vacant room and marks the room occupied,
// both inside one transaction.
func AddTenant(db *gorm.DB, room *roomModel.Room, t *model.Tenant) error {
	if room.IsOccupied {
		return fiber.NewError(fiber.StatusConflict, "Room is already occupied")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create tenant")
		}
		return SetRoomOccupancy(tx, room.ID, true)
	})
}

// ArchiveTenant deactivates the tenant and frees the room. Billing and
// payment history stays untouched.
func ArchiveTenant(db *gorm.DB, t *model.Tenant) error {
	if !t.IsActive {
		return fiber.NewError(fiber.StatusConflict, "Tenant is already archived")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(t).Update("is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive tenant")
		}
		return SetRoomOccupancy(tx, t.RoomID, false)
	})
}

// TenantOwnedBy loads a tenant and checks the room's property belongs to the
// user.
func TenantOwnedBy(db *gorm.DB, tenantID, userID uuid.UUID) (*model.Tenant, error) {
	var t model.Tenant
	err := db.
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("tenants.id = ? AND properties.user_id = ?", tenantID, userID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tenant not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load tenant")
	}
	return &t, nil
}
