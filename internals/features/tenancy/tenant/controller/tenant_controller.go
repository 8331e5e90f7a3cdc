package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomService "github.com/Harshrawat27/rently/internals/features/properties/room/service"
	"github.com/Harshrawat27/rently/internals/features/tenancy/tenant/dto"
	"github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
	"github.com/Harshrawat27/rently/internals/features/tenancy/tenant/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

var validate = validator.New()

// POST /api/tenants
func (h *TenantController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.TenantCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	bookingDate, err := helper.ParseDate(req.BookingDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	room, err := roomService.RoomOwnedBy(h.DB, req.RoomID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	t := model.Tenant{
		RoomID:          req.RoomID,
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		BookingDate:     bookingDate,
		AdvanceAmount:   req.AdvanceAmount,
		BalanceAmount:   req.BalanceAmount,
		NumberOfPersons: req.NumberOfPersons,
		IsActive:        true,
	}
	if err := service.AddTenant(h.DB, room, &t); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tenant created", dto.ToTenantResponse(t))
}

// GET /api/tenants?room_id=&active=
func (h *TenantController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.Model(&model.Tenant{}).
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.user_id = ?", userID).
		Preload("Room")

	if v := c.Query("room_id"); v != "" {
		roomID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid room_id")
		}
		q = q.Where("tenants.room_id = ?", roomID)
	}
	if v := c.Query("active"); v == "true" {
		q = q.Where("tenants.is_active = ?", true)
	} else if v == "false" {
		q = q.Where("tenants.is_active = ?", false)
	}

	var rows []model.Tenant
	if err := q.Order("tenants.created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load tenants")
	}

	return helper.Success(c, "OK", dto.ToTenantResponses(rows))
}

// GET /api/tenants/:id
func (h *TenantController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid tenant ID")
	}

	t, err := service.TenantOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.Preload("Room").First(t, "id = ?", t.ID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load tenant")
	}

	return helper.Success(c, "OK", dto.ToTenantResponse(*t))
}

// PUT /api/tenants/:id
// Advance/balance are deliberately not editable here; they only move through
// the payment endpoints so the ledger stays consistent with the aggregates.
func (h *TenantController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid tenant ID")
	}

	var req dto.TenantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	t, err := service.TenantOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.NumberOfPersons != nil {
		updates["number_of_persons"] = *req.NumberOfPersons
	}
	if len(updates) > 0 {
		if err := h.DB.Model(t).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update tenant")
		}
	}

	return helper.Success(c, "Tenant updated", dto.ToTenantResponse(*t))
}

// POST /api/tenants/:id/archive
func (h *TenantController) Archive(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid tenant ID")
	}

	t, err := service.TenantOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := service.ArchiveTenant(h.DB, t); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Tenant archived", dto.ToTenantResponse(*t))
}
