package services

import (
	"time"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends one entry to the activity feed.
func (s *ActivityService) Record(participantID uint, action string, details map[string]interface{}) error {
	entry := models.ActivityLog{
		ParticipantID: participantID,
		Action:        action,
		Details:       datatypes.JSONMap(details),
		CreatedAt:     time.Now(),
	}
	return s.db.Create(&entry).Error
}

func (s *ActivityService) Recent(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}

	var entries []models.ActivityLog
	if err := s.db.Preload("Participant").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
