package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type RecommendationHandler struct {
	recommendationService service.IRecommendationService
	rateLimiter           *middleware.RateLimiter
}

// NewRecommendationHandler creates the meal recommendation endpoints. A nil
// rateLimiter disables rate limiting.
func NewRecommendationHandler(recommendationService service.IRecommendationService, rateLimiter *middleware.RateLimiter) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		rateLimiter:           rateLimiter,
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/recommendations/meals")
	{
		meals.GET("", h.rateLimiter.RateLimitMiddleware(), h.GetMealRecommendations)
		meals.POST("/accept", h.Accept)
		meals.POST("/rate", h.Rate)
		meals.GET("/ratings", h.ListRatings)
	}
}

// GetMealRecommendations returns the day's suggestions, optionally narrowed
// with ?mealType=.
func (h *RecommendationHandler) GetMealRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.recommendationService.Recommend(c.Request.Context(), userID, c.Query("mealType"))
	if err != nil {
		respondError(c, err, "failed to generate meal recommendations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecommendationHandler) Accept(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AcceptRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	meal, err := h.recommendationService.Accept(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to log recommended meal")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func (h *RecommendationHandler) Rate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.RateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	rating, err := h.recommendationService.Rate(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to rate recommendation")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}

func (h *RecommendationHandler) ListRatings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ratings, err := h.recommendationService.ListRatings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list ratings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
