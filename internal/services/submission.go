package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmissionFolders is the fixed folder convention in enumeration order.
// Detection scans folders in this order, so the first listed folder wins
// when a push touches several of them.
var SubmissionFolders = []string{
	"day-01-agent-foundations",
	"day-02-rag-basics",
	"day-03-multi-agent",
	"day-04-team-challenge",
	"day-05-mvp",
	"homework/day-01",
	"homework/day-02",
	"homework/day-03",
}

// DetectSubmissionFolder matches changed file paths against the folder
// convention. Folder-major iteration keeps the result independent of the
// file ordering in the payload.
func DetectSubmissionFolder(files []string) (string, bool) {
	for _, folder := range SubmissionFolders {
		prefix := folder + "/"
		for _, file := range files {
			if strings.HasPrefix(file, prefix) {
				return folder, true
			}
		}
	}
	return "", false
}

var selfRatingPattern = regexp.MustCompile(`\*\*Celkové hodnotenie:\*\* (\d)/5`)

// ParseSelfRating extracts the self-assessed rating marker from README
// content. Returns nil when the marker is absent.
func ParseSelfRating(content string) *int {
	match := selfRatingPattern.FindStringSubmatch(content)
	if match == nil {
		return nil
	}
	rating, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &rating
}

// SubmissionPoints computes the score fixed at submission time: the
// assignment's maximum, halved (floored) when the push lands strictly
// after the due timestamp. No grace period.
func SubmissionPoints(maxPoints int, dueAt *time.Time, now time.Time) int {
	if maxPoints <= 0 {
		maxPoints = models.DefaultMaxPoints
	}
	points := maxPoints
	if dueAt != nil && now.After(*dueAt) {
		points = points / 2
	}
	return points
}

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

func (s *SubmissionService) ParticipantByGitHubUsername(username string) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.Where("github_username = ?", username).First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *SubmissionService) AssignmentByFolder(folder string) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Where("folder_name = ?", folder).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

type PushSubmission struct {
	ParticipantID uint
	AssignmentID  uint
	CommitSHA     string
	CommitMessage string
	CommitURL     string
	ReadmeContent string
	SelfRating    *int
}

// submissionUpsertColumns lists every column a repeated push overwrites.
// Mentor review fields are included on purpose: a re-push supersedes the
// review and resets the row to submitted state.
var submissionUpsertColumns = []string{
	"commit_sha", "commit_message", "commit_url", "readme_content",
	"self_rating", "points_earned", "status", "submitted_at",
	"mentor_rating", "mentor_notes", "reviewed_at",
}

// UpsertFromPush writes the submission row for a (participant, assignment)
// pair. The assignment's scoring policy is re-read here so the points
// reflect its current maximum and due timestamp.
func (s *SubmissionService) UpsertFromPush(in PushSubmission) (*models.Submission, error) {
	var assignment models.Assignment
	if err := s.db.First(&assignment, in.AssignmentID).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	submission := models.Submission{
		ParticipantID: in.ParticipantID,
		AssignmentID:  in.AssignmentID,
		CommitSHA:     in.CommitSHA,
		CommitMessage: in.CommitMessage,
		CommitURL:     in.CommitURL,
		ReadmeContent: in.ReadmeContent,
		SelfRating:    in.SelfRating,
		PointsEarned:  SubmissionPoints(assignment.MaxPoints, assignment.DueAt, now),
		Status:        models.SubmissionStatusSubmitted,
		SubmittedAt:   now,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "participant_id"},
			{Name: "assignment_id"},
		},
		DoUpdates: clause.AssignmentColumns(submissionUpsertColumns),
	}).Create(&submission).Error
	if err != nil {
		return nil, err
	}

	return &submission, nil
}

// Review stores a mentor rating and marks the submission reviewed.
func (s *SubmissionService) Review(submissionID uint, rating int, notes *string) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return nil, errors.New("submission not found")
	}

	now := time.Now()
	submission.MentorRating = &rating
	submission.MentorNotes = notes
	submission.Status = models.SubmissionStatusReviewed
	submission.ReviewedAt = &now

	if err := s.db.Save(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// PendingReviews returns unreviewed submissions, oldest first.
func (s *SubmissionService) PendingReviews() ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("status = ? AND mentor_rating IS NULL", models.SubmissionStatusSubmitted).
		Preload("Participant").
		Preload("Assignment").
		Order("submitted_at ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
