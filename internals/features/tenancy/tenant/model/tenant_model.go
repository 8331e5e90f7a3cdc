package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
)

// Tenant occupies a room. advance_amount / balance_amount are running
// aggregates of the tenant_payments ledger, updated only inside the same
// transaction that writes the ledger rows. A room has at most one tenant with
// is_active=true; that invariant is held by the occupancy write path, not by
// the schema.
type Tenant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoomID      uuid.UUID `gorm:"type:uuid;not null;index" json:"room_id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phone_number"`
	// anchors the billing cycle schedule
	BookingDate time.Time `gorm:"type:date;not null" json:"booking_date"`
	// paise
	AdvanceAmount int64 `gorm:"not null;default:0;check:advance_amount>=0" json:"advance_amount"`
	// paise
	BalanceAmount   int64 `gorm:"not null;default:0" json:"balance_amount"`
	NumberOfPersons int   `gorm:"not null;default:1" json:"number_of_persons"`
	IsActive        bool  `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Room *roomModel.Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
