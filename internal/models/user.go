package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                   uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name                 string     `json:"name" gorm:"not null"`
	Email                string     `json:"email" gorm:"uniqueIndex;not null"`
	Password             string     `json:"-" gorm:"not null"`
	IsAdmin              bool       `json:"isAdmin" gorm:"default:false"`
	ResetPasswordToken   string     `json:"-" gorm:"index"` // sha256 digest, never the raw token
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
