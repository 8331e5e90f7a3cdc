package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/properties/property/dto"
	"github.com/Harshrawat27/rently/internals/features/properties/property/model"
	"github.com/Harshrawat27/rently/internals/features/properties/property/service"
	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type PropertyController struct {
	DB *gorm.DB
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

var validate = validator.New()

// POST /api/properties
func (h *PropertyController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.PropertyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	p := model.Property{
		UserID:      userID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	}
	if err := h.DB.Create(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create property")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Property created", dto.ToPropertyResponse(p))
}

// GET /api/properties
func (h *PropertyController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Property{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count properties")
	}

	var rows []model.Property
	if err := q.Order("created_at " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load properties")
	}

	return helper.Success(c, "OK", fiber.Map{
		"properties": dto.ToPropertyResponses(rows),
		"pagination": helper.BuildPagination(p, total, len(rows)),
	})
}

// GET /api/properties/:id
func (h *PropertyController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	prop, err := service.PropertyOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", dto.ToPropertyResponse(*prop))
}

// PUT /api/properties/:id
func (h *PropertyController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	var req dto.PropertyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	prop, err := service.PropertyOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) > 0 {
		if err := h.DB.Model(prop).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update property")
		}
	}

	return helper.Success(c, "Property updated", dto.ToPropertyResponse(*prop))
}

// DELETE /api/properties/:id
func (h *PropertyController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	prop, err := service.PropertyOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var roomCount int64
	if err := h.DB.Model(&roomModel.Room{}).
		Where("property_id = ?", prop.ID).
		Count(&roomCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check rooms")
	}
	if roomCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "Property still has rooms; delete them first")
	}

	if err := h.DB.Delete(prop).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete property")
	}

	return helper.Success(c, "Property deleted", nil)
}
