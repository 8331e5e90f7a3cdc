package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/tenancy/meter/dto"
	"github.com/Harshrawat27/rently/internals/features/tenancy/meter/model"
	tenantService "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type MeterReadingController struct {
	DB *gorm.DB
}

func NewMeterReadingController(db *gorm.DB) *MeterReadingController {
	return &MeterReadingController{DB: db}
}

var validate = validator.New()

// POST /api/meter-readings
func (h *MeterReadingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ReadingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CurrentReading < req.PreviousReading {
		return helper.Error(c, fiber.StatusBadRequest, "Current reading must be >= previous reading")
	}
	readingDate, err := helper.ParseDate(req.ReadingDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := tenantService.TenantOwnedBy(h.DB, req.TenantID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	r := model.ElectricMeterReading{
		TenantID:        req.TenantID,
		PreviousReading: req.PreviousReading,
		CurrentReading:  req.CurrentReading,
		UnitsConsumed:   req.CurrentReading - req.PreviousReading,
		ReadingDate:     readingDate,
	}
	if err := h.DB.Create(&r).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save meter reading")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Meter reading saved", dto.ToReadingResponse(r))
}

// GET /api/meter-readings?tenant_id=
func (h *MeterReadingController) List(c *fiber.Ctx) error {
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

	var rows []model.ElectricMeterReading
	if err := h.DB.Where("tenant_id = ?", tenantID).
		Order("reading_date DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load meter readings")
	}

	return helper.Success(c, "OK", dto.ToReadingResponses(rows))
}
