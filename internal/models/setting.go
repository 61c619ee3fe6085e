package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsIdentifier is the fixed key of the single site-settings row.
const SettingsIdentifier = "main_settings_doc"

type Setting struct {
	ID                         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	SiteIdentifier             string      `json:"siteIdentifier" gorm:"uniqueIndex;not null"`
	ProfilePhotoURL            string      `json:"profilePhotoUrl"`
	StoredProfilePhotoFilename string      `json:"storedProfilePhotoFilename"`
	OwnerName                  string      `json:"ownerName" gorm:"not null"`
	JobTitle                   string      `json:"jobTitle" gorm:"not null"`
	Specialization             string      `json:"specialization"`
	HomePageIntroParagraph     string      `json:"homePageIntroParagraph" gorm:"type:text"`
	AboutMeIntroduction        StringSlice `json:"aboutMeIntroduction" gorm:"type:text"`
	AboutMePhilosophy          string      `json:"aboutMePhilosophy" gorm:"type:text"`
	CreatedAt                  time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt                  time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DefaultSettings is the row created on first startup; every field can be
// edited from the admin panel afterwards.
func DefaultSettings() Setting {
	return Setting{
		SiteIdentifier:         SettingsIdentifier,
		ProfilePhotoURL:        "/images/default-profile.png",
		OwnerName:              "Your Name",
		JobTitle:               "Your Profession / Title",
		Specialization:         "Your Specialization / Tagline",
		HomePageIntroParagraph: "Welcome to my portfolio! Update this introduction from the admin panel.",
		AboutMeIntroduction: StringSlice{
			"Hello! I'm a passionate developer with a strong foundation in creating dynamic and responsive web applications.",
			"My journey in tech is driven by a constant desire to learn, innovate, and solve complex problems with elegant and efficient solutions.",
		},
		AboutMePhilosophy: "I believe that the best solutions come from a deep understanding of user needs, collaborative teamwork, and a commitment to clean, maintainable code.",
	}
}
