package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialLink struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"` // platform name, e.g. "GitHub"
	URL          string    `json:"url" gorm:"not null"`
	Label        string    `json:"label"`
	IconName     string    `json:"iconName" gorm:"not null"`
	IsEnabled    bool      `json:"isEnabled" gorm:"default:true"`
	DisplayOrder int       `json:"displayOrder" gorm:"default:0;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (s *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
