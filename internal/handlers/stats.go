package handlers

import (
	"net/http"
	"strconv"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats    *services.StatsService
	activity *services.ActivityService
}

func NewStatsHandler(stats *services.StatsService, activity *services.ActivityService) *StatsHandler {
	return &StatsHandler{stats: stats, activity: activity}
}

// Leaderboard godoc
// @Summary      Participant leaderboard
// @Description  Rankings by total points (submission points plus achievement bonuses)
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} services.LeaderboardEntry
// @Router       /api/v1/leaderboard [get]
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	entries, err := h.stats.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Progress godoc
// @Summary      Progress matrix
// @Description  Completion percentage per role, day and assignment type
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} services.MatrixCell
// @Router       /api/v1/progress [get]
func (h *StatsHandler) Progress(c *gin.Context) {
	cells, err := h.stats.ProgressMatrix()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, cells)
}

// Teams godoc
// @Summary      Team standings
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} services.TeamStanding
// @Router       /api/v1/teams [get]
func (h *StatsHandler) Teams(c *gin.Context) {
	standings, err := h.stats.TeamStandings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, standings)
}

// Dashboard godoc
// @Summary      Dashboard stats
// @Description  Cohort-wide counts and completion rate
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} services.DashboardStats
// @Router       /api/v1/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Activity godoc
// @Summary      Recent activity feed
// @Tags         dashboard
// @Produce      json
// @Param        limit query int false "Max entries (default 10)"
// @Success      200 {array} models.ActivityLog
// @Router       /api/v1/activity [get]
func (h *StatsHandler) Activity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.activity.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if entries == nil {
		entries = []models.ActivityLog{}
	}

	c.JSON(http.StatusOK, entries)
}
