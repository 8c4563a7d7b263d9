package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type MealHandler struct {
	mealService service.IMealService
}

func NewMealHandler(mealService service.IMealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.POST("", h.CreateMeal)
		meals.GET("/summary", h.DailySummary)
		meals.GET("/:id", h.GetMeal)
		meals.PUT("/:id", h.UpdateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	meal, err := h.mealService.CreateMeal(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create meal")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meals, total, err := h.mealService.ListMeals(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err, "failed to list meals")
		return
	}
	c.JSON(http.StatusOK, listResponse("meals", meals, opts, total))
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	meal, err := h.mealService.GetMeal(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "failed to get meal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	meal, err := h.mealService.UpdateMeal(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err, "failed to update meal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.mealService.DeleteMeal(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "failed to delete meal")
		return
	}
	c.Status(http.StatusNoContent)
}

// DailySummary totals the meals of ?date= (default today, UTC).
func (h *MealHandler) DailySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		day = t
	}

	summary, err := h.mealService.DailySummary(c.Request.Context(), userID, day)
	if err != nil {
		respondError(c, err, "failed to summarise meals")
		return
	}
	c.JSON(http.StatusOK, summary)
}
