package handlers

import (
	"log"
	"net/http"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"github.com/gin-gonic/gin"
)

// ReviewStore is implemented by *services.SubmissionService.
type ReviewStore interface {
	Review(submissionID uint, rating int, notes *string) (*models.Submission, error)
}

// FavoriteAwarder is implemented by *services.AchievementService.
type FavoriteAwarder interface {
	AwardMentorFavorite(participantID uint) error
}

type ReviewHandler struct {
	submissions  ReviewStore
	achievements FavoriteAwarder
	activity     ActivityRecorder
}

func NewReviewHandler(submissions ReviewStore, achievements FavoriteAwarder, activity ActivityRecorder) *ReviewHandler {
	return &ReviewHandler{submissions: submissions, achievements: achievements, activity: activity}
}

type ReviewRequest struct {
	SubmissionID uint    `json:"submission_id" binding:"required" example:"1"`
	MentorRating int     `json:"mentor_rating" binding:"required,min=1,max=5" example:"4"`
	MentorNotes  *string `json:"mentor_notes" example:"Solid work, missing tests"`
}

type ReviewResponse struct {
	Success bool `json:"success" example:"true"`
}

// Review godoc
// @Summary      Submit a mentor review
// @Description  Stores a mentor rating and optional notes for a submission; a 5/5 rating awards the mentor favorite achievement once
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request body ReviewRequest true "Review data"
// @Success      200 {object} ReviewResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Review(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "submission_id and mentor_rating (1-5) are required"})
		return
	}

	submission, err := h.submissions.Review(req.SubmissionID, req.MentorRating, req.MentorNotes)
	if err != nil {
		log.Printf("review: submission %d: %v", req.SubmissionID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save review"})
		return
	}

	if err := h.activity.Record(submission.ParticipantID, models.ActivityActionReview, map[string]interface{}{
		"submission_id": submission.ID,
		"mentor_rating": req.MentorRating,
	}); err != nil {
		log.Printf("review: activity entry for submission %d: %v", submission.ID, err)
	}

	if req.MentorRating == 5 {
		if err := h.achievements.AwardMentorFavorite(submission.ParticipantID); err != nil {
			log.Printf("review: mentor favorite for participant %d: %v", submission.ParticipantID, err)
		}
	}

	c.JSON(http.StatusOK, ReviewResponse{Success: true})
}
