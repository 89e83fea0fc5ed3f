package handlers

import (
	"net/http"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignments *services.AssignmentService
}

func NewAssignmentHandler(assignments *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// List godoc
// @Summary      List assignments
// @Tags         assignments
// @Produce      json
// @Success      200 {array} models.Assignment
// @Router       /api/v1/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignments.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}
