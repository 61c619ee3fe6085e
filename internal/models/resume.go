package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Resume struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Field            string    `json:"field" gorm:"not null"` // e.g. "Machine Learning", "Web Development"
	OriginalFilename string    `json:"originalFilename" gorm:"not null"`
	StoredFilename   string    `json:"storedFilename" gorm:"not null"`
	FilePath         string    `json:"filePath" gorm:"not null"` // web-accessible path
	Mimetype         string    `json:"mimetype"`
	Size             int64     `json:"size"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
