package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshrawat27/rently/internals/features/tenancy/meter/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type ReadingCreateRequest struct {
	TenantID        uuid.UUID `json:"tenant_id" validate:"required"`
	PreviousReading int64     `json:"previous_reading" validate:"min=0"`
	CurrentReading  int64     `json:"current_reading" validate:"min=0"`
	ReadingDate     string    `json:"reading_date" validate:"required"`
}

type ReadingResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	PreviousReading int64     `json:"previous_reading"`
	CurrentReading  int64     `json:"current_reading"`
	UnitsConsumed   int64     `json:"units_consumed"`
	ReadingDate     string    `json:"reading_date"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToReadingResponse(m model.ElectricMeterReading) ReadingResponse {
	return ReadingResponse{
		ID:              m.ID,
		TenantID:        m.TenantID,
		PreviousReading: m.PreviousReading,
		CurrentReading:  m.CurrentReading,
		UnitsConsumed:   m.UnitsConsumed,
		ReadingDate:     helper.FormatDate(m.ReadingDate),
		CreatedAt:       m.CreatedAt,
	}
}

func ToReadingResponses(ms []model.ElectricMeterReading) []ReadingResponse {
	out := make([]ReadingResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToReadingResponse(m))
	}
	return out
}
