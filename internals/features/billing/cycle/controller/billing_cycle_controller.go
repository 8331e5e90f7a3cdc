package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/cycle/dto"
	"github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
	"github.com/Harshrawat27/rently/internals/features/billing/cycle/service"
	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
	tenantService "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type BillingCycleController struct {
	DB *gorm.DB
}

func NewBillingCycleController(db *gorm.DB) *BillingCycleController {
	return &BillingCycleController{DB: db}
}

var validate = validator.New()

// POST /api/billing-cycles/generate
// Pre-generates the tenant's schedule up to now + horizon. Safe to call
// repeatedly; already-persisted windows are skipped.
func (h *BillingCycleController) Generate(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tenant, err := tenantService.TenantOwnedBy(h.DB, req.TenantID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// rent snapshot comes from the room's rent at generation time
	var room roomModel.Room
	if err := h.DB.First(&room, "id = ?", tenant.RoomID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Room not found")
	}

	now := time.Now().UTC()
	inserted, err := service.GenerateCycles(h.DB, tenant.ID, tenant.BookingDate, room.RentAmount, now, req.HorizonMonths)
	if err != nil {
		// report what got committed before the failure
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError,
			"Cycle generation failed part-way", fiber.Map{
				"committed": dto.ToCycleResponses(inserted, now),
			})
	}

	return helper.Success(c, "Billing cycles generated", fiber.Map{
		"created": dto.ToCycleResponses(inserted, now),
	})
}

// GET /api/billing-cycles?tenant_id=
func (h *BillingCycleController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id is required")
	}

	if _, err := tenantService.TenantOwnedBy(h.DB, tenantID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.Where("tenant_id = ?", tenantID)
	if v := c.Query("paid"); v == "true" {
		q = q.Where("is_paid = ?", true)
	} else if v == "false" {
		q = q.Where("is_paid = ?", false)
	}

	var rows []model.TenantBillingCycle
	if err := q.Order("cycle_start_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load billing cycles")
	}

	return helper.Success(c, "OK", dto.ToCycleResponses(rows, time.Now().UTC()))
}

// GET /api/billing-cycles/current?tenant_id=&as_of=
func (h *BillingCycleController) Current(c *fiber.Ctx) error {
	return h.lookupCycle(c, service.CurrentCycle)
}

// GET /api/billing-cycles/next?tenant_id=&as_of=
func (h *BillingCycleController) Next(c *fiber.Ctx) error {
	return h.lookupCycle(c, service.NextCycle)
}

func (h *BillingCycleController) lookupCycle(c *fiber.Ctx, find func(*gorm.DB, uuid.UUID, time.Time) (*model.TenantBillingCycle, error)) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id is required")
	}

	asOf := time.Now().UTC()
	if v := c.Query("as_of"); v != "" {
		if asOf, err = helper.ParseDate(v); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	if _, err := tenantService.TenantOwnedBy(h.DB, tenantID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	cycle, err := find(h.DB, tenantID, asOf)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", dto.ToCycleResponse(*cycle, asOf))
}
