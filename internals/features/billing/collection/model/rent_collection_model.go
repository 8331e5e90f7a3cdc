package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RentCollection is the month-keyed view of rent: one row per tenant per
// calendar month, due on the 5th, toggled collected by the owner. It lives
// alongside the anchored billing cycles and does not feed the payment
// ledger.
type RentCollection struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_tenant_month,priority:1" json:"tenant_id"`
	RoomID   uuid.UUID `gorm:"type:uuid;not null;index" json:"room_id"`
	// YYYY-MM
	Month string `gorm:"type:varchar(7);not null;uniqueIndex:uniq_tenant_month,priority:2" json:"month"`
	// paise
	RentAmount int64 `gorm:"not null" json:"rent_amount"`
	// paise
	ElectricityBill int64 `gorm:"not null;default:0" json:"electricity_bill"`
	// paise
	TotalAmount   int64      `gorm:"not null" json:"total_amount"`
	IsCollected   bool       `gorm:"not null;default:false" json:"is_collected"`
	CollectedDate *time.Time `gorm:"type:date" json:"collected_date,omitempty"`
	DueDate       time.Time  `gorm:"type:date;not null" json:"due_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RentCollection) TableName() string {
	return "rent_collections"
}

func (r *RentCollection) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
