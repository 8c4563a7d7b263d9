package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type ChallengeHandler struct {
	challengeService service.IChallengeService
}

func NewChallengeHandler(challengeService service.IChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

func (h *ChallengeHandler) RegisterRoutes(router *gin.RouterGroup) {
	challenges := router.Group("/challenges")
	{
		challenges.GET("", h.ListChallenges)
		challenges.POST("", h.CreateChallenge)
		challenges.GET("/:id", h.GetChallenge)
		challenges.POST("/:id/join", h.Join)
		challenges.DELETE("/:id/join", h.Leave)
		challenges.PUT("/:id/progress", h.UpdateProgress)
		challenges.GET("/:id/leaderboard", h.Standings)
	}
}

func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	challenge, err := h.challengeService.CreateChallenge(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create challenge")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"challenge": challenge})
}

// ListChallenges lists all challenges, or only running ones with ?active=true.
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activeOnly := c.Query("active") == "true"

	challenges, total, err := h.challengeService.ListChallenges(c.Request.Context(), activeOnly, opts)
	if err != nil {
		respondError(c, err, "failed to list challenges")
		return
	}
	c.JSON(http.StatusOK, listResponse("challenges", challenges, opts, total))
}

func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	challenge, err := h.challengeService.GetChallenge(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get challenge")
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

func (h *ChallengeHandler) Join(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	participant, err := h.challengeService.Join(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "failed to join challenge")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"participant": participant})
}

func (h *ChallengeHandler) Leave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.challengeService.Leave(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, "failed to leave challenge")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChallengeHandler) UpdateProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.ChallengeProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	participant, err := h.challengeService.UpdateProgress(c.Request.Context(), id, userID, req.Progress)
	if err != nil {
		respondError(c, err, "failed to update progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"participant": participant})
}

func (h *ChallengeHandler) Standings(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	standings, err := h.challengeService.Standings(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to load challenge leaderboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"standings": standings})
}
