package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name                string    `json:"name" gorm:"not null"`
	IssuingOrganization string    `json:"issuingOrganization" gorm:"not null"`
	Description         string    `json:"description" gorm:"type:text"`
	ImageURL            string    `json:"imageUrl" gorm:"not null"`
	StoredImageFilename string    `json:"storedImageFilename" gorm:"not null"`
	Mimetype            string    `json:"mimetype" gorm:"not null"`
	CredentialID        string    `json:"credentialId"`
	CredentialURL       string    `json:"credentialUrl"`
	DateIssued          string    `json:"dateIssued"` // free-form, e.g. "June 2024"
	CreatedAt           time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt           time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
