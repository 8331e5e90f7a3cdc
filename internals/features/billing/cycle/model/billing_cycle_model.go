package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantBillingCycle is a one-month liability window anchored to the tenant's
// booking day-of-month. Windows are end-inclusive and contiguous per tenant.
// rent_amount is snapshotted from the room at generation time and is never
// refreshed from later rent changes.
type TenantBillingCycle struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_tenant_cycle_start,priority:1" json:"tenant_id"`

	CycleStartDate time.Time `gorm:"type:date;not null;uniqueIndex:uniq_tenant_cycle_start,priority:2" json:"cycle_start_date"`
	CycleEndDate   time.Time `gorm:"type:date;not null" json:"cycle_end_date"`

	// paise
	RentAmount        int64 `gorm:"not null;default:0;check:rent_amount>=0" json:"rent_amount"`
	ElectricityAmount int64 `gorm:"not null;default:0;check:electricity_amount>=0" json:"electricity_amount"`
	TotalAmount       int64 `gorm:"not null;default:0" json:"total_amount"`

	// unpaid → paid, one way
	IsPaid   bool       `gorm:"not null;default:false;index" json:"is_paid"`
	PaidDate *time.Time `gorm:"type:date" json:"paid_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TenantBillingCycle) TableName() string {
	return "tenant_billing_cycles"
}

func (m *TenantBillingCycle) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
