package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshrawat27/rently/internals/features/properties/room/model"
)

type RoomCreateRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	RoomNumber string    `json:"room_number" validate:"required,min=1,max=30"`
	// paise
	RentAmount int64 `json:"rent_amount" validate:"min=0"`
}

type RoomUpdateRequest struct {
	RoomNumber *string `json:"room_number,omitempty" validate:"omitempty,min=1,max=30"`
	RentAmount *int64  `json:"rent_amount,omitempty" validate:"omitempty,min=0"`
}

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	RoomNumber string    `json:"room_number"`
	RentAmount int64     `json:"rent_amount"`
	IsOccupied bool      `json:"is_occupied"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToRoomResponse(m model.Room) RoomResponse {
	return RoomResponse{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		RoomNumber: m.RoomNumber,
		RentAmount: m.RentAmount,
		IsOccupied: m.IsOccupied,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToRoomResponses(ms []model.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRoomResponse(m))
	}
	return out
}
