package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Achievement struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	DisplayOrder int       `json:"displayOrder" gorm:"default:0;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
