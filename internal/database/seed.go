package database

import (
	"log"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/gorm"
)

// seedAssignments is the fixed folder convention: one folder per day and type.
// Due dates are cohort specific and set later through the admin API.
var seedAssignments = []models.Assignment{
	{FolderName: "day-01-agent-foundations", Title: "Agent Foundations", Day: 1, Type: models.AssignmentTypeInClass, MaxPoints: 15},
	{FolderName: "day-02-rag-basics", Title: "RAG Basics", Day: 2, Type: models.AssignmentTypeInClass, MaxPoints: 15},
	{FolderName: "day-03-multi-agent", Title: "Multi-Agent Systems", Day: 3, Type: models.AssignmentTypeInClass, MaxPoints: 15},
	{FolderName: "day-04-team-challenge", Title: "Team Challenge", Day: 4, Type: models.AssignmentTypeInClass, MaxPoints: 15},
	{FolderName: "day-05-mvp", Title: "MVP Day", Day: 5, Type: models.AssignmentTypeInClass, MaxPoints: 15},
	{FolderName: "homework/day-01", Title: "Homework Day 1", Day: 1, Type: models.AssignmentTypeHomework, MaxPoints: 15},
	{FolderName: "homework/day-02", Title: "Homework Day 2", Day: 2, Type: models.AssignmentTypeHomework, MaxPoints: 15},
	{FolderName: "homework/day-03", Title: "Homework Day 3", Day: 3, Type: models.AssignmentTypeHomework, MaxPoints: 15},
}

var seedAchievements = []models.Achievement{
	{Code: models.AchievementFirstBlood, Name: "First Blood", Description: "First assignment submitted", PointsBonus: 10},
	{Code: models.AchievementStreak3, Name: "On a Roll", Description: "3 assignments submitted", PointsBonus: 15},
	{Code: models.AchievementStreak5, Name: "Unstoppable", Description: "5 assignments submitted", PointsBonus: 25},
	{Code: models.AchievementEarlyBird, Name: "Early Bird", Description: "Submitted before 9:00", PointsBonus: 10},
	{Code: models.AchievementNightOwl, Name: "Night Owl", Description: "Submitted after 22:00", PointsBonus: 10},
	{Code: models.AchievementMentorFavorite, Name: "Mentor Favorite", Description: "Received a 5/5 mentor rating", PointsBonus: 20},
}

// Seed inserts the assignment and achievement catalogs if they are missing.
// Safe to run on every startup.
func Seed(db *gorm.DB) {
	for _, a := range seedAssignments {
		assignment := a
		if err := db.Where(models.Assignment{FolderName: assignment.FolderName}).
			FirstOrCreate(&assignment).Error; err != nil {
			log.Fatalf("failed to seed assignment %s: %v", a.FolderName, err)
		}
	}

	for _, a := range seedAchievements {
		achievement := a
		if err := db.Where(models.Achievement{Code: achievement.Code}).
			FirstOrCreate(&achievement).Error; err != nil {
			log.Fatalf("failed to seed achievement %s: %v", a.Code, err)
		}
	}

	log.Println("reference data seeded")
}
