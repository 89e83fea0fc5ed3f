package models

import "time"

const (
	AchievementFirstBlood     = "first_blood"
	AchievementStreak3        = "streak_3"
	AchievementStreak5        = "streak_5"
	AchievementEarlyBird      = "early_bird"
	AchievementNightOwl       = "night_owl"
	AchievementMentorFavorite = "mentor_favorite"
)

type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	PointsBonus int    `gorm:"not null;default:0" json:"points_bonus"`
}

// ParticipantAchievement links a participant to an earned achievement.
// The composite unique index makes awarding idempotent.
type ParticipantAchievement struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ParticipantID uint        `gorm:"not null;uniqueIndex:idx_participant_achievement" json:"participant_id"`
	AchievementID uint        `gorm:"not null;uniqueIndex:idx_participant_achievement" json:"achievement_id"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
	EarnedAt      time.Time   `json:"earned_at"`
}
