package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshrawat27/rently/internals/features/billing/collection/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type CollectRequest struct {
	CollectionID uuid.UUID `json:"collection_id" validate:"required"`
	IsCollected  bool      `json:"is_collected"`
	// required when marking collected, YYYY-MM-DD
	CollectedDate string `json:"collected_date,omitempty"`
	// paise; optional electricity adjustment at collection time
	ElectricityBill *int64 `json:"electricity_bill,omitempty" validate:"omitempty,min=0"`
}

type RentCollectionResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	RoomID          uuid.UUID `json:"room_id"`
	Month           string    `json:"month"`
	RentAmount      int64     `json:"rent_amount"`
	ElectricityBill int64     `json:"electricity_bill"`
	TotalAmount     int64     `json:"total_amount"`
	IsCollected     bool      `json:"is_collected"`
	CollectedDate   *string   `json:"collected_date,omitempty"`
	DueDate         string    `json:"due_date"`
	Overdue         bool      `json:"overdue"`
}

func ToRentCollectionResponse(m model.RentCollection, now time.Time) RentCollectionResponse {
	resp := RentCollectionResponse{
		ID:              m.ID,
		TenantID:        m.TenantID,
		RoomID:          m.RoomID,
		Month:           m.Month,
		RentAmount:      m.RentAmount,
		ElectricityBill: m.ElectricityBill,
		TotalAmount:     m.TotalAmount,
		IsCollected:     m.IsCollected,
		DueDate:         helper.FormatDate(m.DueDate),
		Overdue:         !m.IsCollected && m.DueDate.Before(helper.DateOnly(now)),
	}
	if m.CollectedDate != nil {
		s := helper.FormatDate(*m.CollectedDate)
		resp.CollectedDate = &s
	}
	return resp
}

func ToRentCollectionResponses(ms []model.RentCollection, now time.Time) []RentCollectionResponse {
	out := make([]RentCollectionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRentCollectionResponse(m, now))
	}
	return out
}
