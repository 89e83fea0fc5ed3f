package handlers

import (
	"net/http"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievements *services.AchievementService
}

func NewAchievementHandler(achievements *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// List godoc
// @Summary      Achievement catalog
// @Tags         achievements
// @Produce      json
// @Success      200 {array} models.Achievement
// @Router       /api/v1/achievements [get]
func (h *AchievementHandler) List(c *gin.Context) {
	achievements, err := h.achievements.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, achievements)
}
