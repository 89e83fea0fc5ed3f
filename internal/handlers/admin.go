package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	submissions *services.SubmissionService
	assignments *services.AssignmentService
}

func NewAdminHandler(submissions *services.SubmissionService, assignments *services.AssignmentService) *AdminHandler {
	return &AdminHandler{submissions: submissions, assignments: assignments}
}

// PendingReviews godoc
// @Summary      Pending review queue
// @Description  Submissions awaiting mentor review, oldest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Submission
// @Router       /api/v1/admin/pending [get]
func (h *AdminHandler) PendingReviews(c *gin.Context) {
	submissions, err := h.submissions.PendingReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if submissions == nil {
		submissions = []models.Submission{}
	}

	c.JSON(http.StatusOK, submissions)
}

type UpdateAssignmentRequest struct {
	MaxPoints *int       `json:"max_points" binding:"omitempty,min=1" example:"15"`
	DueAt     *time.Time `json:"due_at" example:"2026-03-02T18:00:00Z"`
}

// UpdateAssignment godoc
// @Summary      Update assignment scoring policy
// @Description  Set max points and due timestamp; already earned points are not recomputed
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Assignment ID"
// @Param        request body UpdateAssignmentRequest true "Fields to update"
// @Success      200 {object} models.Assignment
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/assignments/{id} [put]
func (h *AdminHandler) UpdateAssignment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid assignment id"})
		return
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	assignment, err := h.assignments.Update(uint(id), req.MaxPoints, req.DueAt)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignment)
}
