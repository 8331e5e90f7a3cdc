package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshrawat27/rently/internals/features/properties/property/model"
)

type PropertyCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Address     string  `json:"address" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

type PropertyUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Address     *string `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

type PropertyResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToPropertyResponse(m model.Property) PropertyResponse {
	return PropertyResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Address:     m.Address,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPropertyResponses(ms []model.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPropertyResponse(m))
	}
	return out
}
