package models

import "time"

const (
	StreamTech     = "Tech"
	StreamBusiness = "Business"
)

// Fixed cohort layout: 8 roles, 8 teams.
var (
	Roles = []string{"FDE", "AI-SE", "AI-PM", "AI-DA", "AI-DS", "AI-SEC", "AI-FE", "AI-DX"}
	Teams = []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta"}
)

type Participant struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	GitHubUsername string    `gorm:"column:github_username;size:100;uniqueIndex;not null" json:"github_username"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	Role           string    `gorm:"size:20;not null" json:"role"`
	Team           string    `gorm:"size:20;not null" json:"team"`
	Stream         string    `gorm:"size:20;not null" json:"stream"`
	AvatarURL      string    `gorm:"size:255" json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
