package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyExpense struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	Title      string    `gorm:"size:120;not null" json:"title"`
	// paise
	Amount      int64     `gorm:"not null;check:amount>=0" json:"amount"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ExpenseDate time.Time `gorm:"type:date;not null;index" json:"expense_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PropertyExpense) TableName() string {
	return "property_expenses"
}

func (e *PropertyExpense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
