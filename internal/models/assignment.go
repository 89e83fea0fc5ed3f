package models

import "time"

const (
	AssignmentTypeInClass  = "in_class"
	AssignmentTypeHomework = "homework"
)

// DefaultMaxPoints applies when an assignment has no configured maximum.
const DefaultMaxPoints = 15

type Assignment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	FolderName string     `gorm:"size:100;uniqueIndex;not null" json:"folder_name"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	Day        int        `gorm:"not null" json:"day"`
	Type       string     `gorm:"size:20;not null" json:"type"`
	MaxPoints  int        `gorm:"not null;default:15" json:"max_points"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
