package handlers

import (
	"log"
	"net/http"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	participants *services.ParticipantService
	activity     ActivityRecorder
}

func NewParticipantHandler(participants *services.ParticipantService, activity ActivityRecorder) *ParticipantHandler {
	return &ParticipantHandler{participants: participants, activity: activity}
}

type RegisterParticipantRequest struct {
	GitHubUsername string `json:"github_username" binding:"required,min=1,max=100" example:"octocat"`
	Name           string `json:"name" binding:"required" example:"Jane Doe"`
	Email          string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Role           string `json:"role" binding:"required,oneof=FDE AI-SE AI-PM AI-DA AI-DS AI-SEC AI-FE AI-DX" example:"AI-SE"`
	Team           string `json:"team" binding:"required,oneof=Alpha Beta Gamma Delta Epsilon Zeta Eta Theta" example:"Alpha"`
	Stream         string `json:"stream" binding:"required,oneof=Tech Business" example:"Tech"`
}

// Register godoc
// @Summary      Register a participant
// @Description  Create a cohort participant keyed by GitHub username
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body RegisterParticipantRequest true "Registration data"
// @Success      201 {object} models.Participant
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/participants [post]
func (h *ParticipantHandler) Register(c *gin.Context) {
	var req RegisterParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.participants.Register(services.RegisterParticipantInput{
		GitHubUsername: req.GitHubUsername,
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		Team:           req.Team,
		Stream:         req.Stream,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.activity.Record(participant.ID, models.ActivityActionRegistration, map[string]interface{}{
		"github_username": participant.GitHubUsername,
		"team":            participant.Team,
	}); err != nil {
		log.Printf("registration: activity entry for %s: %v", participant.GitHubUsername, err)
	}

	c.JSON(http.StatusCreated, participant)
}

// List godoc
// @Summary      List participants
// @Tags         participants
// @Produce      json
// @Success      200 {array} models.Participant
// @Router       /api/v1/participants [get]
func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.participants.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, participants)
}

// Get godoc
// @Summary      Get participant profile
// @Description  Participant with submissions, achievements and total points
// @Tags         participants
// @Produce      json
// @Param        username path string true "GitHub username"
// @Success      200 {object} services.ParticipantProfile
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/participants/{username} [get]
func (h *ParticipantHandler) Get(c *gin.Context) {
	profile, err := h.participants.Profile(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
