package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type LeaderboardHandler struct {
	leaderboardService service.ILeaderboardService
}

func NewLeaderboardHandler(leaderboardService service.ILeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (h *LeaderboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/leaderboard", h.Top)
}

func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit := types.DefaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	entries, err := h.leaderboardService.Top(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "failed to load leaderboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
