package models

import "time"

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusReviewed  = "reviewed"
)

// Submission is keyed by (participant, assignment): a later push to the same
// folder overwrites the whole row, including any prior mentor review.
type Submission struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ParticipantID uint        `gorm:"not null;uniqueIndex:idx_submission_unique" json:"participant_id"`
	AssignmentID  uint        `gorm:"not null;uniqueIndex:idx_submission_unique" json:"assignment_id"`
	Participant   Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Assignment    Assignment  `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	CommitSHA     string      `gorm:"column:commit_sha;size:64;not null" json:"commit_sha"`
	CommitMessage string      `gorm:"type:text" json:"commit_message"`
	CommitURL     string      `gorm:"column:commit_url;size:255" json:"commit_url"`
	ReadmeContent string      `gorm:"type:text" json:"readme_content,omitempty"`
	SelfRating    *int        `json:"self_rating,omitempty"`
	PointsEarned  int         `gorm:"not null;default:0" json:"points_earned"`
	Status        string      `gorm:"size:20;not null;default:'submitted'" json:"status"`
	SubmittedAt   time.Time   `json:"submitted_at"`
	MentorRating  *int        `json:"mentor_rating,omitempty"`
	MentorNotes   *string     `gorm:"type:text" json:"mentor_notes,omitempty"`
	ReviewedAt    *time.Time  `json:"reviewed_at,omitempty"`
}
