package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cycleModel "github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
	"github.com/Harshrawat27/rently/internals/features/home/dashboard/dto"
	propertyModel "github.com/Harshrawat27/rently/internals/features/properties/property/model"
	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
	tenantModel "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard
// One aggregate snapshot per owner; every count is scoped through the
// property ownership chain.
func (h *DashboardController) Overview(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var out dto.DashboardResponse

	if err := h.DB.Model(&propertyModel.Property{}).
		Where("user_id = ?", userID).
		Count(&out.TotalProperties).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	rooms := func() *gorm.DB {
		return h.DB.Model(&roomModel.Room{}).
			Joins("JOIN properties ON properties.id = rooms.property_id").
			Where("properties.user_id = ?", userID)
	}
	if err := rooms().Count(&out.TotalRooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	if err := rooms().Where("rooms.is_occupied = ?", true).
		Count(&out.OccupiedRooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	out.VacantRooms = out.TotalRooms - out.OccupiedRooms

	var expectedRent *int64
	if err := h.DB.Model(&roomModel.Room{}).
		Select("SUM(rooms.rent_amount)").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.user_id = ? AND rooms.is_occupied = ?", userID, true).
		Scan(&expectedRent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	if expectedRent != nil {
		out.ExpectedMonthlyRent = *expectedRent
	}

	tenants := func() *gorm.DB {
		return h.DB.Model(&tenantModel.Tenant{}).
			Joins("JOIN rooms ON rooms.id = tenants.room_id").
			Joins("JOIN properties ON properties.id = rooms.property_id").
			Where("properties.user_id = ? AND tenants.is_active = ?", userID, true)
	}
	if err := tenants().Count(&out.ActiveTenants).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	var sums struct {
		Balance *int64
		Advance *int64
	}
	if err := tenants().
		Select("SUM(tenants.balance_amount) AS balance, SUM(tenants.advance_amount) AS advance").
		Scan(&sums).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	if sums.Balance != nil {
		out.TotalOutstanding = *sums.Balance
	}
	if sums.Advance != nil {
		out.TotalAdvanceHeld = *sums.Advance
	}

	cycles := func() *gorm.DB {
		return h.DB.Model(&cycleModel.TenantBillingCycle{}).
			Joins("JOIN tenants ON tenants.id = tenant_billing_cycles.tenant_id").
			Joins("JOIN rooms ON rooms.id = tenants.room_id").
			Joins("JOIN properties ON properties.id = rooms.property_id").
			Where("properties.user_id = ? AND tenant_billing_cycles.is_paid = ?", userID, false)
	}
	if err := cycles().Count(&out.UnpaidCycles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	today := helper.DateOnly(time.Now().UTC())
	if err := cycles().
		Where("tenant_billing_cycles.cycle_end_date < ?", today).
		Count(&out.OverdueCycles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	return helper.Success(c, "OK", out)
}
