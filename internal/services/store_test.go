package services

import (
	"testing"
	"time"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see its own empty in-memory
	// database, so pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Participant{},
		&models.Assignment{},
		&models.Submission{},
		&models.Achievement{},
		&models.ParticipantAchievement{},
		&models.ActivityLog{},
	))
	return db
}

func seedCohort(t *testing.T, db *gorm.DB) (models.Participant, models.Assignment) {
	t.Helper()

	participant := models.Participant{
		GitHubUsername: "octocat",
		Name:           "Octo Cat",
		Email:          "octo@example.com",
		Role:           "AI-SE",
		Team:           "Alpha",
		Stream:         models.StreamTech,
	}
	require.NoError(t, db.Create(&participant).Error)

	assignment := models.Assignment{
		FolderName: "day-01-agent-foundations",
		Title:      "Agent Foundations",
		Day:        1,
		Type:       models.AssignmentTypeInClass,
		MaxPoints:  15,
	}
	require.NoError(t, db.Create(&assignment).Error)

	return participant, assignment
}

func intPtr(n int) *int { return &n }

func TestUpsertFromPushKeepsSingleRow(t *testing.T) {
	db := openTestDB(t)
	participant, assignment := seedCohort(t, db)
	svc := NewSubmissionService(db)

	_, err := svc.UpsertFromPush(PushSubmission{
		ParticipantID: participant.ID,
		AssignmentID:  assignment.ID,
		CommitSHA:     "aaa111",
		CommitMessage: "first push",
		SelfRating:    intPtr(3),
	})
	require.NoError(t, err)

	var first models.Submission
	require.NoError(t, db.Where("participant_id = ? AND assignment_id = ?",
		participant.ID, assignment.ID).First(&first).Error)

	_, err = svc.UpsertFromPush(PushSubmission{
		ParticipantID: participant.ID,
		AssignmentID:  assignment.ID,
		CommitSHA:     "bbb222",
		CommitMessage: "second push",
	})
	require.NoError(t, err)

	var rows []models.Submission
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, "bbb222", rows[0].CommitSHA)
	assert.Equal(t, "second push", rows[0].CommitMessage)
	assert.Nil(t, rows[0].SelfRating)
	assert.Equal(t, 15, rows[0].PointsEarned)
}

func TestUpsertFromPushResetsReview(t *testing.T) {
	db := openTestDB(t)
	participant, assignment := seedCohort(t, db)
	svc := NewSubmissionService(db)

	_, err := svc.UpsertFromPush(PushSubmission{
		ParticipantID: participant.ID,
		AssignmentID:  assignment.ID,
		CommitSHA:     "aaa111",
	})
	require.NoError(t, err)

	var submission models.Submission
	require.NoError(t, db.Where("participant_id = ?", participant.ID).First(&submission).Error)

	notes := "great work"
	reviewed, err := svc.Review(submission.ID, 5, &notes)
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusReviewed, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt)

	// A later push to the same folder supersedes the review.
	_, err = svc.UpsertFromPush(PushSubmission{
		ParticipantID: participant.ID,
		AssignmentID:  assignment.ID,
		CommitSHA:     "bbb222",
	})
	require.NoError(t, err)

	var rows []models.Submission
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	assert.Equal(t, models.SubmissionStatusSubmitted, rows[0].Status)
	assert.Nil(t, rows[0].MentorRating)
	assert.Nil(t, rows[0].MentorNotes)
	assert.Nil(t, rows[0].ReviewedAt)
	assert.Equal(t, "bbb222", rows[0].CommitSHA)
}

func TestUpsertFromPushHalvesLatePoints(t *testing.T) {
	db := openTestDB(t)
	participant, assignment := seedCohort(t, db)
	svc := NewSubmissionService(db)

	due := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&assignment).Update("due_at", &due).Error)

	_, err := svc.UpsertFromPush(PushSubmission{
		ParticipantID: participant.ID,
		AssignmentID:  assignment.ID,
		CommitSHA:     "aaa111",
	})
	require.NoError(t, err)

	var submission models.Submission
	require.NoError(t, db.Where("participant_id = ?", participant.ID).First(&submission).Error)
	assert.Equal(t, 7, submission.PointsEarned)
}

func TestAwardMentorFavoriteOnce(t *testing.T) {
	db := openTestDB(t)
	participant, _ := seedCohort(t, db)
	require.NoError(t, db.Create(&models.Achievement{
		Code:        models.AchievementMentorFavorite,
		Name:        "Mentor's Favorite",
		PointsBonus: 20,
	}).Error)

	svc := NewAchievementService(db, NewActivityService(db))

	require.NoError(t, svc.AwardMentorFavorite(participant.ID))
	require.NoError(t, svc.AwardMentorFavorite(participant.ID))

	var awards []models.ParticipantAchievement
	require.NoError(t, db.Where("participant_id = ?", participant.ID).Find(&awards).Error)
	require.Len(t, awards, 1)

	var entries []models.ActivityLog
	require.NoError(t, db.Where("action = ?", models.ActivityActionAchievement).Find(&entries).Error)
	assert.Len(t, entries, 1)
}

func TestRecentClampsLimit(t *testing.T) {
	db := openTestDB(t)
	participant, _ := seedCohort(t, db)
	svc := NewActivityService(db)

	for i := 0; i < 12; i++ {
		require.NoError(t, svc.Record(participant.ID, models.ActivityActionSubmission, map[string]interface{}{
			"commit_sha": "aaa111",
		}))
	}

	entries, err := svc.Recent(101)
	require.NoError(t, err)
	assert.Len(t, entries, 12)

	entries, err = svc.Recent(0)
	require.NoError(t, err)
	assert.Len(t, entries, 10)

	entries, err = svc.Recent(5)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}
