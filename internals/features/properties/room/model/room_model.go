package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room belongs to a property. is_occupied is a cached flag with a single
// write path (tenant add / tenant archive), never recomputed from tenant rows.
type Room struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	RoomNumber string    `gorm:"size:30;not null" json:"room_number"`
	// monthly rent in paise
	RentAmount int64 `gorm:"not null;check:rent_amount>=0" json:"rent_amount"`
	IsOccupied bool  `gorm:"not null;default:false" json:"is_occupied"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
