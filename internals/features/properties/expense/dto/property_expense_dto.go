package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshrawat27/rently/internals/features/properties/expense/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type ExpenseCreateRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	Title      string    `json:"title" validate:"required,min=1,max=120"`
	// paise
	Amount      int64   `json:"amount" validate:"min=0"`
	Description *string `json:"description,omitempty"`
	ExpenseDate string  `json:"expense_date" validate:"required"`
}

type ExpenseResponse struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	Title       string    `json:"title"`
	Amount      int64     `json:"amount"`
	Description *string   `json:"description,omitempty"`
	ExpenseDate string    `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToExpenseResponse(m model.PropertyExpense) ExpenseResponse {
	return ExpenseResponse{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		Title:       m.Title,
		Amount:      m.Amount,
		Description: m.Description,
		ExpenseDate: helper.FormatDate(m.ExpenseDate),
		CreatedAt:   m.CreatedAt,
	}
}

func ToExpenseResponses(ms []model.PropertyExpense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToExpenseResponse(m))
	}
	return out
}
