package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/collection/model"
	tenantModel "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
)

// rent is due on the 5th of the month
const dueDay = 5

// MonthKey renders the YYYY-MM key for a point in time.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// NextMonthKey steps to the following calendar month. Anchored to the first
// of the month so a call on Jan 31 yields February, not the normalized
// March 2 that AddDate would give.
func NextMonthKey(t time.Time) string {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// DueDate returns the 5th of the month identified by a YYYY-MM key.
func DueDate(month string) (time.Time, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
	}
	return time.Date(t.Year(), t.Month(), dueDay, 0, 0, 0, 0, time.UTC), nil
}

// GenerateForUser creates rent collection rows for the current and next
// month for every active tenant living in the user's properties. Already
// existing (tenant, month) rows are left alone, so the endpoint can be hit
// on every app open.
func GenerateForUser(db *gorm.DB, userID uuid.UUID, now time.Time) ([]model.RentCollection, error) {
	months := []string{
		MonthKey(now),
		NextMonthKey(now),
	}

	var tenants []tenantModel.Tenant
	err := db.
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.user_id = ? AND tenants.is_active = ?", userID, true).
		Preload("Room").
		Find(&tenants).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load tenants")
	}

	var created []model.RentCollection
	for i := range tenants {
		t := &tenants[i]
		if t.Room == nil {
			continue
		}
		for _, month := range months {
			var count int64
			if err := db.Model(&model.RentCollection{}).
				Where("tenant_id = ? AND month = ?", t.ID, month).
				Count(&count).Error; err != nil {
				return created, fiber.NewError(fiber.StatusInternalServerError, "Failed to check rent collections")
			}
			if count > 0 {
				continue
			}

			due, err := DueDate(month)
			if err != nil {
				return created, err
			}
			row := model.RentCollection{
				TenantID:    t.ID,
				RoomID:      t.RoomID,
				Month:       month,
				RentAmount:  t.Room.RentAmount,
				TotalAmount: t.Room.RentAmount,
				DueDate:     due,
			}
			if err := db.Create(&row).Error; err != nil {
				if isUniqueViolation(err) {
					continue
				}
				return created, fiber.NewError(fiber.StatusInternalServerError, "Failed to create rent collection")
			}
			created = append(created, row)
		}
	}
	return created, nil
}

// MarkCollected flips the collected flag; uncollecting clears the date.
func MarkCollected(db *gorm.DB, row *model.RentCollection, collected bool, collectedDate time.Time) error {
	updates := map[string]interface{}{
		"is_collected": collected,
	}
	if collected {
		updates["collected_date"] = collectedDate
	} else {
		updates["collected_date"] = gorm.Expr("NULL")
	}
	if err := db.Model(row).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update rent collection")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// sqlite in tests reports unique failures as plain strings
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key"))
}
