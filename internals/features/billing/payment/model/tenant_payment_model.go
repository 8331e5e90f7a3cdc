package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "advance"
	PaymentTypeBalance PaymentType = "balance"
)

// TenantPayment is an append-only ledger row. Rows are only ever inserted;
// corrections are follow-up entries. Sign convention: consuming advance and
// adding to the balance owed are negative, advance top-ups and balance
// payments are positive.
type TenantPayment struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID   `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Type     PaymentType `gorm:"column:payment_type;type:varchar(20);not null;index" json:"payment_type"`
	// signed paise
	Amount      int64     `gorm:"not null" json:"amount"`
	PaymentDate time.Time `gorm:"type:date;not null;index" json:"payment_date"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TenantPayment) TableName() string {
	return "tenant_payments"
}

func (p *TenantPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
