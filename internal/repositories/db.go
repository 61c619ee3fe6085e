package repositories

import (
	"errors"
	"log"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := config.Envs.DB_URL
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Resume{},
		&models.Certificate{},
		&models.Education{},
		&models.Achievement{},
		&models.SkillCategory{},
		&models.SocialLink{},
		&models.Message{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	DB = db
	log.Println("Successfully connected to database")
}

// EnsureSettings creates the site-settings singleton if it does not exist.
// Called once at startup so the read path never has to create anything.
func EnsureSettings(db *gorm.DB) (*models.Setting, error) {
	var settings models.Setting
	err := db.Where("site_identifier = ?", models.SettingsIdentifier).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSettings()
		if err := db.Create(&settings).Error; err != nil {
			return nil, err
		}
		log.Println("Created default site settings")
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
