package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID                  uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title               string      `json:"title" gorm:"not null"`
	Description         string      `json:"description" gorm:"type:text;not null"`
	ImageURL            string      `json:"imageUrl"`            // web-accessible path
	StoredImageFilename string      `json:"storedImageFilename"` // actual filename on disk
	ProjectLink         string      `json:"projectLink"`
	GithubURL           string      `json:"githubUrl"`
	Technologies        StringSlice `json:"technologies" gorm:"type:text"`
	CreatedAt           time.Time   `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
