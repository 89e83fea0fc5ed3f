package services

import (
	"errors"
	"fmt"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/gorm"
)

type ParticipantService struct {
	db *gorm.DB
}

func NewParticipantService(db *gorm.DB) *ParticipantService {
	return &ParticipantService{db: db}
}

type RegisterParticipantInput struct {
	GitHubUsername string
	Name           string
	Email          string
	Role           string
	Team           string
	Stream         string
}

func (s *ParticipantService) Register(in RegisterParticipantInput) (*models.Participant, error) {
	var existing models.Participant
	if err := s.db.Where("github_username = ?", in.GitHubUsername).First(&existing).Error; err == nil {
		return nil, errors.New("github username already registered")
	}

	participant := models.Participant{
		GitHubUsername: in.GitHubUsername,
		Name:           in.Name,
		Email:          in.Email,
		Role:           in.Role,
		Team:           in.Team,
		Stream:         in.Stream,
		AvatarURL:      fmt.Sprintf("https://github.com/%s.png", in.GitHubUsername),
	}
	if err := s.db.Create(&participant).Error; err != nil {
		return nil, err
	}

	return &participant, nil
}

func (s *ParticipantService) List() ([]models.Participant, error) {
	var participants []models.Participant
	if err := s.db.Order("name ASC").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

type ParticipantProfile struct {
	Participant  models.Participant              `json:"participant"`
	Submissions  []models.Submission             `json:"submissions"`
	Achievements []models.ParticipantAchievement `json:"achievements"`
	TotalPoints  int                             `json:"total_points"`
}

// Profile returns a participant with their submissions, earned achievements
// and total points (base plus achievement bonuses).
func (s *ParticipantService) Profile(githubUsername string) (*ParticipantProfile, error) {
	var participant models.Participant
	if err := s.db.Where("github_username = ?", githubUsername).First(&participant).Error; err != nil {
		return nil, errors.New("participant not found")
	}

	var submissions []models.Submission
	if err := s.db.Where("participant_id = ?", participant.ID).
		Preload("Assignment").
		Order("submitted_at ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}

	var achievements []models.ParticipantAchievement
	if err := s.db.Where("participant_id = ?", participant.ID).
		Preload("Achievement").
		Order("earned_at ASC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}

	total := 0
	for _, sub := range submissions {
		total += sub.PointsEarned
	}
	for _, pa := range achievements {
		total += pa.Achievement.PointsBonus
	}

	return &ParticipantProfile{
		Participant:  participant,
		Submissions:  submissions,
		Achievements: achievements,
		TotalPoints:  total,
	}, nil
}
