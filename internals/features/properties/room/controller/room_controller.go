package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	propertyService "github.com/Harshrawat27/rently/internals/features/properties/property/service"
	"github.com/Harshrawat27/rently/internals/features/properties/room/dto"
	"github.com/Harshrawat27/rently/internals/features/properties/room/model"
	"github.com/Harshrawat27/rently/internals/features/properties/room/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

var validate = validator.New()

// POST /api/rooms
func (h *RoomController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RoomCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := propertyService.PropertyOwnedBy(h.DB, req.PropertyID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	room := model.Room{
		PropertyID: req.PropertyID,
		RoomNumber: req.RoomNumber,
		RentAmount: req.RentAmount,
		IsOccupied: false,
	}
	if err := h.DB.Create(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create room")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Room created", dto.ToRoomResponse(room))
}

// GET /api/rooms?property_id=
func (h *RoomController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	propertyID, err := uuid.Parse(c.Query("property_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "property_id is required")
	}

	if _, err := propertyService.PropertyOwnedBy(h.DB, propertyID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.Room
	q := h.DB.Where("property_id = ?", propertyID)
	if v := c.Query("occupied"); v == "true" {
		q = q.Where("is_occupied = ?", true)
	} else if v == "false" {
		q = q.Where("is_occupied = ?", false)
	}
	if err := q.Order("room_number ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load rooms")
	}

	return helper.Success(c, "OK", dto.ToRoomResponses(rows))
}

// GET /api/rooms/:id
func (h *RoomController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid room ID")
	}

	room, err := service.RoomOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", dto.ToRoomResponse(*room))
}

// PUT /api/rooms/:id
// Rent changes here never touch already-generated billing cycles; their rent
// is snapshotted at generation time.
func (h *RoomController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid room ID")
	}

	var req dto.RoomUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	room, err := service.RoomOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]interface{}{}
	if req.RoomNumber != nil {
		updates["room_number"] = *req.RoomNumber
	}
	if req.RentAmount != nil {
		updates["rent_amount"] = *req.RentAmount
	}
	if len(updates) > 0 {
		if err := h.DB.Model(room).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update room")
		}
	}

	return helper.Success(c, "Room updated", dto.ToRoomResponse(*room))
}

// DELETE /api/rooms/:id
func (h *RoomController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid room ID")
	}

	room, err := service.RoomOwnedBy(h.DB, id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if room.IsOccupied {
		return helper.Error(c, fiber.StatusConflict, "Room is occupied; archive the tenant first")
	}

	if err := h.DB.Delete(room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete room")
	}

	return helper.Success(c, "Room deleted", nil)
}
