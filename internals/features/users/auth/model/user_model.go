package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
