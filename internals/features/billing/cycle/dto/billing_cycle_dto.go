package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
	"github.com/Harshrawat27/rently/internals/features/billing/cycle/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type GenerateRequest struct {
	TenantID      uuid.UUID `json:"tenant_id" validate:"required"`
	HorizonMonths int       `json:"horizon_months" validate:"min=0,max=12"`
}

type CycleResponse struct {
	ID                uuid.UUID `json:"id"`
	TenantID          uuid.UUID `json:"tenant_id"`
	CycleStartDate    string    `json:"cycle_start_date"`
	CycleEndDate      string    `json:"cycle_end_date"`
	RentAmount        int64     `json:"rent_amount"`
	ElectricityAmount int64     `json:"electricity_amount"`
	TotalAmount       int64     `json:"total_amount"`
	IsPaid            bool      `json:"is_paid"`
	PaidDate          *string   `json:"paid_date,omitempty"`

	// derived against "now"
	Status   string `json:"status"` // paid|overdue|upcoming
	DaysLeft int    `json:"days_left"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCycleResponse(m model.TenantBillingCycle, asOf time.Time) CycleResponse {
	resp := CycleResponse{
		ID:                m.ID,
		TenantID:          m.TenantID,
		CycleStartDate:    helper.FormatDate(m.CycleStartDate),
		CycleEndDate:      helper.FormatDate(m.CycleEndDate),
		RentAmount:        m.RentAmount,
		ElectricityAmount: m.ElectricityAmount,
		TotalAmount:       m.TotalAmount,
		IsPaid:            m.IsPaid,
		DaysLeft:          service.DaysLeft(m.CycleEndDate, asOf),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.PaidDate != nil {
		d := helper.FormatDate(*m.PaidDate)
		resp.PaidDate = &d
	}
	switch {
	case m.IsPaid:
		resp.Status = "paid"
	case service.IsOverdue(m.IsPaid, m.CycleEndDate, asOf):
		resp.Status = "overdue"
	default:
		resp.Status = "upcoming"
	}
	return resp
}

func ToCycleResponses(ms []model.TenantBillingCycle, asOf time.Time) []CycleResponse {
	out := make([]CycleResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCycleResponse(m, asOf))
	}
	return out
}
