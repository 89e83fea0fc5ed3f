package services

import (
	"errors"
	"time"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/gorm"
)

type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

func (s *AssignmentService) List() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.db.Order("day ASC, type ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// Update sets the scoring policy of an assignment. Only affects future
// submissions: points already earned are never recomputed.
func (s *AssignmentService) Update(id uint, maxPoints *int, dueAt *time.Time) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.First(&assignment, id).Error; err != nil {
		return nil, errors.New("assignment not found")
	}

	if maxPoints != nil {
		assignment.MaxPoints = *maxPoints
	}
	if dueAt != nil {
		assignment.DueAt = dueAt
	}

	if err := s.db.Save(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}
