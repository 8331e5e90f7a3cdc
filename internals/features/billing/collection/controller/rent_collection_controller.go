package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/collection/dto"
	"github.com/Harshrawat27/rently/internals/features/billing/collection/model"
	"github.com/Harshrawat27/rently/internals/features/billing/collection/service"
	tenantService "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type RentCollectionController struct {
	DB *gorm.DB
}

func NewRentCollectionController(db *gorm.DB) *RentCollectionController {
	return &RentCollectionController{DB: db}
}

var validate = validator.New()

// POST /api/rent-collections/generate
// Ensures current and next month rows exist for every active tenant the
// caller owns. Idempotent per (tenant, month).
func (h *RentCollectionController) Generate(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now().UTC()
	created, err := service.GenerateForUser(h.DB, userID, now)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Rent collections generated", fiber.Map{
		"created": dto.ToRentCollectionResponses(created, now),
	})
}

// GET /api/rent-collections?month=&tenant_id=&collected=
func (h *RentCollectionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.Model(&model.RentCollection{}).
		Joins("JOIN tenants ON tenants.id = rent_collections.tenant_id").
		Joins("JOIN rooms ON rooms.id = rent_collections.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.user_id = ?", userID)

	if v := c.Query("month"); v != "" {
		q = q.Where("rent_collections.month = ?", v)
	}
	if v := c.Query("tenant_id"); v != "" {
		tenantID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid tenant_id")
		}
		q = q.Where("rent_collections.tenant_id = ?", tenantID)
	}
	if v := c.Query("collected"); v == "true" {
		q = q.Where("rent_collections.is_collected = ?", true)
	} else if v == "false" {
		q = q.Where("rent_collections.is_collected = ?", false)
	}

	var rows []model.RentCollection
	if err := q.Order("rent_collections.month DESC, rent_collections.created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load rent collections")
	}

	return helper.Success(c, "OK", dto.ToRentCollectionResponses(rows, time.Now().UTC()))
}

// PATCH /api/rent-collections/collect
// Toggles collected state; an electricity adjustment recomputes the total.
func (h *RentCollectionController) Collect(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CollectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.RentCollection
	if err := h.DB.First(&row, "id = ?", req.CollectionID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Rent collection not found")
	}
	if _, err := tenantService.TenantOwnedBy(h.DB, row.TenantID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if req.ElectricityBill != nil {
		updates := map[string]interface{}{
			"electricity_bill": *req.ElectricityBill,
			"total_amount":     row.RentAmount + *req.ElectricityBill,
		}
		if err := h.DB.Model(&row).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update rent collection")
		}
	}

	collectedDate := time.Now().UTC()
	if req.IsCollected {
		if req.CollectedDate == "" {
			return helper.Error(c, fiber.StatusBadRequest, "collected_date is required")
		}
		if collectedDate, err = helper.ParseDate(req.CollectedDate); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	if err := service.MarkCollected(h.DB, &row, req.IsCollected, collectedDate); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.First(&row, "id = ?", row.ID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reload rent collection")
	}
	return helper.Success(c, "Rent collection updated", dto.ToRentCollectionResponse(row, time.Now().UTC()))
}
