package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/github"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmissionStore is the storage surface the webhook pipeline needs.
// *services.SubmissionService implements it; tests substitute a fake.
type SubmissionStore interface {
	ParticipantByGitHubUsername(username string) (*models.Participant, error)
	AssignmentByFolder(folder string) (*models.Assignment, error)
	UpsertFromPush(in services.PushSubmission) (*models.Submission, error)
}

type AchievementEvaluator interface {
	EvaluateOnSubmission(participantID uint)
}

type ActivityRecorder interface {
	Record(participantID uint, action string, details map[string]interface{}) error
}

type ReadmeFetcher interface {
	FetchReadme(username, branch, folder string) (string, error)
}

type WebhookHandler struct {
	secret       string
	submissions  SubmissionStore
	achievements AchievementEvaluator
	activity     ActivityRecorder
	readme       ReadmeFetcher
}

func NewWebhookHandler(secret string, submissions SubmissionStore, achievements AchievementEvaluator, activity ActivityRecorder, readme ReadmeFetcher) *WebhookHandler {
	return &WebhookHandler{
		secret:       secret,
		submissions:  submissions,
		achievements: achievements,
		activity:     activity,
		readme:       readme,
	}
}

type WebhookResponse struct {
	Success      bool `json:"success" example:"true"`
	SubmissionID uint `json:"submission_id" example:"1"`
	PointsEarned int  `json:"points_earned" example:"15"`
}

// Handle godoc
// @Summary      GitHub push webhook
// @Description  Verifies the payload signature, maps the push to an assignment folder, scores and upserts the submission, then evaluates achievements
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        X-Hub-Signature-256 header string true "HMAC-SHA256 payload signature"
// @Param        X-GitHub-Event header string true "Event type, only push is processed"
// @Success      200 {object} WebhookResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /webhook/github [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	// Without a shared secret every signature would verify against an
	// empty key, so refuse deliveries until one is configured.
	if h.secret == "" {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "webhook secret not configured"})
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read body"})
		return
	}

	signature := c.GetHeader(github.SignatureHeader)
	if !github.VerifySignature(payload, h.secret, signature) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid signature"})
		return
	}

	// Everything but a push gets a benign 200 so GitHub does not retry.
	if c.GetHeader("X-GitHub-Event") != "push" {
		c.JSON(http.StatusOK, MessageResponse{Message: "ignored event"})
		return
	}

	var event github.PushEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
		return
	}

	username := event.Repository.Owner.Login
	if username == "" || event.HeadCommit == nil || event.HeadCommit.ID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing data"})
		return
	}

	participant, err := h.submissions.ParticipantByGitHubUsername(username)
	if err != nil {
		log.Printf("webhook: unknown participant %s", username)
		c.JSON(http.StatusOK, MessageResponse{Message: "unknown participant"})
		return
	}

	folder, ok := services.DetectSubmissionFolder(event.HeadCommit.ChangedFiles())
	if !ok {
		c.JSON(http.StatusOK, MessageResponse{Message: "no submission folder detected"})
		return
	}

	assignment, err := h.submissions.AssignmentByFolder(folder)
	if err != nil {
		log.Printf("webhook: unknown assignment folder %s", folder)
		c.JSON(http.StatusOK, MessageResponse{Message: "unknown assignment"})
		return
	}

	// Best-effort enrichment: a failed README fetch never blocks the pipeline.
	var readmeContent string
	var selfRating *int
	if content, err := h.readme.FetchReadme(username, event.Branch(), folder); err == nil {
		readmeContent = content
		selfRating = services.ParseSelfRating(content)
	} else {
		log.Printf("webhook: could not fetch README for %s/%s: %v", username, folder, err)
	}

	submission, err := h.submissions.UpsertFromPush(services.PushSubmission{
		ParticipantID: participant.ID,
		AssignmentID:  assignment.ID,
		CommitSHA:     event.HeadCommit.ID,
		CommitMessage: event.HeadCommit.Message,
		CommitURL:     event.HeadCommit.URL,
		ReadmeContent: readmeContent,
		SelfRating:    selfRating,
	})
	if err != nil {
		log.Printf("webhook: submission upsert for %s/%s: %v", username, folder, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "database error"})
		return
	}

	details := map[string]interface{}{
		"folder":        folder,
		"commit_sha":    event.HeadCommit.ID,
		"points_earned": submission.PointsEarned,
	}
	if delivery, err := uuid.Parse(c.GetHeader("X-GitHub-Delivery")); err == nil {
		details["delivery_id"] = delivery.String()
	}
	if err := h.activity.Record(participant.ID, models.ActivityActionSubmission, details); err != nil {
		log.Printf("webhook: activity entry for %s: %v", username, err)
	}

	h.achievements.EvaluateOnSubmission(participant.ID)

	c.JSON(http.StatusOK, WebhookResponse{
		Success:      true,
		SubmissionID: submission.ID,
		PointsEarned: submission.PointsEarned,
	})
}
