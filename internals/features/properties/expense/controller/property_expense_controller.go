package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/properties/expense/dto"
	"github.com/Harshrawat27/rently/internals/features/properties/expense/model"
	propertyService "github.com/Harshrawat27/rently/internals/features/properties/property/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

var validate = validator.New()

// POST /api/property-expenses
func (h *ExpenseController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ExpenseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	expenseDate, err := helper.ParseDate(req.ExpenseDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := propertyService.PropertyOwnedBy(h.DB, req.PropertyID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	e := model.PropertyExpense{
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Amount:      req.Amount,
		Description: req.Description,
		ExpenseDate: expenseDate,
	}
	if err := h.DB.Create(&e).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create expense")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Expense recorded", dto.ToExpenseResponse(e))
}

// GET /api/property-expenses?property_id=
func (h *ExpenseController) List(c *fiber.Ctx) error {
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

	var rows []model.PropertyExpense
	if err := h.DB.Where("property_id = ?", propertyID).
		Order("expense_date DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load expenses")
	}

	var total int64
	for _, e := range rows {
		total += e.Amount
	}

	return helper.Success(c, "OK", fiber.Map{
		"expenses":     dto.ToExpenseResponses(rows),
		"total_amount": total,
	})
}

// DELETE /api/property-expenses/:id
func (h *ExpenseController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid expense ID")
	}

	var e model.PropertyExpense
	err = h.DB.
		Joins("JOIN properties ON properties.id = property_expenses.property_id").
		Where("property_expenses.id = ? AND properties.user_id = ?", id, userID).
		First(&e).Error
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Expense not found")
	}

	if err := h.DB.Delete(&e).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete expense")
	}

	return helper.Success(c, "Expense deleted", nil)
}
