package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Education struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Degree      string    `json:"degree" gorm:"not null"`
	Institution string    `json:"institution" gorm:"not null"`
	Location    string    `json:"location"`
	StartDate   string    `json:"startDate" gorm:"not null"` // free-form, "Present" is a valid end date
	EndDate     string    `json:"endDate" gorm:"not null"`
	GPA         string    `json:"gpa"` // e.g. "3.8/4.0"
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
