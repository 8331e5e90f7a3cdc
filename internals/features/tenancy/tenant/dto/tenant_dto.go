package dto

import (
	"time"

	"github.com/google/uuid"

	roomDTO "github.com/Harshrawat27/rently/internals/features/properties/room/dto"
	"github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type TenantCreateRequest struct {
	RoomID      uuid.UUID `json:"room_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=120"`
	PhoneNumber string    `json:"phone_number" validate:"required,min=5,max=20"`
	BookingDate string    `json:"booking_date" validate:"required"`
	// paise
	AdvanceAmount int64 `json:"advance_amount" validate:"min=0"`
	// paise
	BalanceAmount   int64 `json:"balance_amount" validate:"min=0"`
	NumberOfPersons int   `json:"number_of_persons" validate:"min=1"`
}

type TenantUpdateRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	PhoneNumber     *string `json:"phone_number,omitempty" validate:"omitempty,min=5,max=20"`
	NumberOfPersons *int    `json:"number_of_persons,omitempty" validate:"omitempty,min=1"`
}

type TenantResponse struct {
	ID              uuid.UUID             `json:"id"`
	RoomID          uuid.UUID             `json:"room_id"`
	Name            string                `json:"name"`
	PhoneNumber     string                `json:"phone_number"`
	BookingDate     string                `json:"booking_date"`
	AdvanceAmount   int64                 `json:"advance_amount"`
	BalanceAmount   int64                 `json:"balance_amount"`
	NumberOfPersons int                   `json:"number_of_persons"`
	IsActive        bool                  `json:"is_active"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Room            *roomDTO.RoomResponse `json:"room,omitempty"`
}

func ToTenantResponse(m model.Tenant) TenantResponse {
	resp := TenantResponse{
		ID:              m.ID,
		RoomID:          m.RoomID,
		Name:            m.Name,
		PhoneNumber:     m.PhoneNumber,
		BookingDate:     helper.FormatDate(m.BookingDate),
		AdvanceAmount:   m.AdvanceAmount,
		BalanceAmount:   m.BalanceAmount,
		NumberOfPersons: m.NumberOfPersons,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Room != nil {
		r := roomDTO.ToRoomResponse(*m.Room)
		resp.Room = &r
	}
	return resp
}

func ToTenantResponses(ms []model.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTenantResponse(m))
	}
	return out
}
