package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshrawat27/rently/internals/features/billing/payment/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type ApplyCyclePaymentRequest struct {
	CycleID uuid.UUID `json:"cycle_id" validate:"required"`
	// paise; electricity may be revised at payment time
	ElectricityAmount int64 `json:"electricity_amount" validate:"min=0"`
	// paise
	AdvanceToUse int64 `json:"advance_to_use" validate:"min=0"`
	// paise
	DirectPayment int64  `json:"direct_payment" validate:"min=0"`
	PaymentDate   string `json:"payment_date" validate:"required"`
}

type RecordPaymentRequest struct {
	TenantID    uuid.UUID `json:"tenant_id" validate:"required"`
	PaymentType string    `json:"payment_type" validate:"required,oneof=advance balance"`
	// paise
	Amount      int64   `json:"amount" validate:"required,min=1"`
	PaymentDate string  `json:"payment_date" validate:"required"`
	Description *string `json:"description,omitempty"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	PaymentType string    `json:"payment_type"`
	Amount      int64     `json:"amount"`
	PaymentDate string    `json:"payment_date"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AllocationResponse struct {
	TotalAmount      int64 `json:"total_amount"`
	FromAdvance      int64 `json:"from_advance"`
	DirectPayment    int64 `json:"direct_payment"`
	RemainingBalance int64 `json:"remaining_balance"`
	CyclePaid        bool  `json:"cycle_paid"`
}

func ToPaymentResponse(m model.TenantPayment) PaymentResponse {
	return PaymentResponse{
		ID:          m.ID,
		TenantID:    m.TenantID,
		PaymentType: string(m.Type),
		Amount:      m.Amount,
		PaymentDate: helper.FormatDate(m.PaymentDate),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToPaymentResponses(ms []model.TenantPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
