package services

import (
	"errors"
	"log"
	"time"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/gorm"
)

type AchievementService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewAchievementService(db *gorm.DB, activity *ActivityService) *AchievementService {
	return &AchievementService{db: db, activity: activity}
}

func (s *AchievementService) List() ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.db.Order("id ASC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

// qualifyingCodes runs the fixed rule set against the full submission
// history. Rules are membership checks, not counters: recomputing from
// history on every push keeps awards stable when submissions are replaced.
func qualifyingCodes(totalSubmissions, lastSubmissionHour int, earned map[string]bool) []string {
	var codes []string

	if totalSubmissions == 1 && !earned[models.AchievementFirstBlood] {
		codes = append(codes, models.AchievementFirstBlood)
	}
	if totalSubmissions >= 3 && !earned[models.AchievementStreak3] {
		codes = append(codes, models.AchievementStreak3)
	}
	if totalSubmissions >= 5 && !earned[models.AchievementStreak5] {
		codes = append(codes, models.AchievementStreak5)
	}
	if lastSubmissionHour < 9 && !earned[models.AchievementEarlyBird] {
		codes = append(codes, models.AchievementEarlyBird)
	}
	if lastSubmissionHour >= 22 && !earned[models.AchievementNightOwl] {
		codes = append(codes, models.AchievementNightOwl)
	}

	return codes
}

// EvaluateOnSubmission re-runs the achievement rules for one participant
// after a successful submission write. Best effort: failures are logged
// and never propagate back to the webhook pipeline.
func (s *AchievementService) EvaluateOnSubmission(participantID uint) {
	var submissions []models.Submission
	if err := s.db.Where("participant_id = ?", participantID).
		Order("submitted_at ASC").
		Find(&submissions).Error; err != nil {
		log.Printf("achievement evaluation: load submissions for participant %d: %v", participantID, err)
		return
	}
	if len(submissions) == 0 {
		return
	}

	earned, err := s.earnedCodes(participantID)
	if err != nil {
		log.Printf("achievement evaluation: load earned codes for participant %d: %v", participantID, err)
		return
	}

	lastHour := submissions[len(submissions)-1].SubmittedAt.Hour()
	for _, code := range qualifyingCodes(len(submissions), lastHour, earned) {
		if err := s.award(participantID, code); err != nil {
			log.Printf("achievement evaluation: award %s to participant %d: %v", code, participantID, err)
		}
	}
}

// AwardMentorFavorite awards the 5/5 mentor rating achievement once per
// participant. Check-then-insert keeps the award idempotent; the unique
// index on the join table backstops concurrent reviews.
func (s *AchievementService) AwardMentorFavorite(participantID uint) error {
	var achievement models.Achievement
	if err := s.db.Where("code = ?", models.AchievementMentorFavorite).
		First(&achievement).Error; err != nil {
		return err
	}

	var existing models.ParticipantAchievement
	err := s.db.Where("participant_id = ? AND achievement_id = ?", participantID, achievement.ID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.insertAward(participantID, achievement)
}

func (s *AchievementService) earnedCodes(participantID uint) (map[string]bool, error) {
	var codes []string
	err := s.db.Model(&models.ParticipantAchievement{}).
		Joins("JOIN achievements ON achievements.id = participant_achievements.achievement_id").
		Where("participant_achievements.participant_id = ?", participantID).
		Pluck("achievements.code", &codes).Error
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(codes))
	for _, code := range codes {
		earned[code] = true
	}
	return earned, nil
}

func (s *AchievementService) award(participantID uint, code string) error {
	var achievement models.Achievement
	if err := s.db.Where("code = ?", code).First(&achievement).Error; err != nil {
		return err
	}
	return s.insertAward(participantID, achievement)
}

func (s *AchievementService) insertAward(participantID uint, achievement models.Achievement) error {
	pa := models.ParticipantAchievement{
		ParticipantID: participantID,
		AchievementID: achievement.ID,
		EarnedAt:      time.Now(),
	}
	if err := s.db.Create(&pa).Error; err != nil {
		return err
	}

	if err := s.activity.Record(participantID, models.ActivityActionAchievement, map[string]interface{}{
		"achievement_code": achievement.Code,
		"points_bonus":     achievement.PointsBonus,
	}); err != nil {
		log.Printf("achievement activity entry for participant %d: %v", participantID, err)
	}
	return nil
}
