package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActivityActionSubmission   = "submission"
	ActivityActionReview       = "review"
	ActivityActionAchievement  = "achievement"
	ActivityActionRegistration = "registration"
)

// ActivityLog is an append-only event feed shown on the dashboard.
type ActivityLog struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	ParticipantID uint              `gorm:"not null;index" json:"participant_id"`
	Participant   Participant       `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Action        string            `gorm:"size:50;not null" json:"action"`
	Details       datatypes.JSONMap `gorm:"type:jsonb" json:"details"`
	CreatedAt     time.Time         `gorm:"index" json:"created_at"`
}
