package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
)

// GenerateCycles walks the tenant's schedule and inserts every window that is
// not persisted yet. Idempotent on (tenant_id, cycle_start_date): the lookup
// skips existing rows and the unique index catches the race when two clients
// generate at the same time. Inserts are individual, so a mid-way store error
// leaves the earlier cycles committed; the caller gets those back along with
// the error.
func GenerateCycles(db *gorm.DB, tenantID uuid.UUID, bookingDate time.Time, rentAmount int64, now time.Time, horizonMonths int) ([]model.TenantBillingCycle, error) {
	if horizonMonths <= 0 {
		horizonMonths = DefaultHorizonMonths
	}

	var inserted []model.TenantBillingCycle
	for _, w := range Schedule(bookingDate, now, horizonMonths) {
		var count int64
		if err := db.Model(&model.TenantBillingCycle{}).
			Where("tenant_id = ? AND cycle_start_date = ?", tenantID, w.Start).
			Count(&count).Error; err != nil {
			return inserted, fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing cycles")
		}
		if count > 0 {
			continue
		}

		cycle := model.TenantBillingCycle{
			TenantID:       tenantID,
			CycleStartDate: w.Start,
			CycleEndDate:   w.End,
			RentAmount:     rentAmount,
			TotalAmount:    rentAmount,
		}
		if err := db.Create(&cycle).Error; err != nil {
			if isUniqueViolation(err) {
				// lost the race; the row exists, nothing to do
				continue
			}
			return inserted, fiber.NewError(fiber.StatusInternalServerError, "Failed to insert billing cycle")
		}
		inserted = append(inserted, cycle)
	}
	return inserted, nil
}

// CurrentCycle returns the persisted cycle whose window contains asOf.
func CurrentCycle(db *gorm.DB, tenantID uuid.UUID, asOf time.Time) (*model.TenantBillingCycle, error) {
	asOf = dateOnly(asOf)
	var cycle model.TenantBillingCycle
	err := db.Where("tenant_id = ? AND cycle_start_date <= ? AND cycle_end_date >= ?", tenantID, asOf, asOf).
		First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No billing cycle covers this date")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load billing cycle")
	}
	return &cycle, nil
}

// NextCycle returns the persisted cycle with the smallest start strictly
// after asOf.
func NextCycle(db *gorm.DB, tenantID uuid.UUID, asOf time.Time) (*model.TenantBillingCycle, error) {
	asOf = dateOnly(asOf)
	var cycle model.TenantBillingCycle
	err := db.Where("tenant_id = ? AND cycle_start_date > ?", tenantID, asOf).
		Order("cycle_start_date ASC").
		First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No upcoming billing cycle")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load billing cycle")
	}
	return &cycle, nil
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
