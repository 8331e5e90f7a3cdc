package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ElectricMeterReading is informational only; it never feeds billing
// reconciliation. units_consumed is computed server side.
type ElectricMeterReading struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	PreviousReading int64     `gorm:"not null;check:previous_reading>=0" json:"previous_reading"`
	CurrentReading  int64     `gorm:"not null;check:current_reading>=0" json:"current_reading"`
	UnitsConsumed   int64     `gorm:"not null" json:"units_consumed"`
	ReadingDate     time.Time `gorm:"type:date;not null;index" json:"reading_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ElectricMeterReading) TableName() string {
	return "electric_meter_readings"
}

func (r *ElectricMeterReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
