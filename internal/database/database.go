package database

import (
	"fmt"
	"log"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/config"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Mentor{},
		&models.Participant{},
		&models.Assignment{},
		&models.Submission{},
		&models.Achievement{},
		&models.ParticipantAchievement{},
		&models.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
