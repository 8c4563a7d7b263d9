package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type WorkoutHandler struct {
	workoutService service.IWorkoutService
}

func NewWorkoutHandler(workoutService service.IWorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.GET("", h.ListWorkouts)
		workouts.POST("", h.CreateWorkout)
		workouts.GET("/stats", h.Stats)
		workouts.GET("/:id", h.GetWorkout)
		workouts.PUT("/:id", h.UpdateWorkout)
		workouts.DELETE("/:id", h.DeleteWorkout)
	}
}

func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create workout")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"workout": workout})
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workouts, total, err := h.workoutService.ListWorkouts(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err, "failed to list workouts")
		return
	}
	c.JSON(http.StatusOK, listResponse("workouts", workouts, opts, total))
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "failed to get workout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err, "failed to update workout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "failed to delete workout")
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats summarises workouts between the optional from and to query dates.
func (h *WorkoutHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.workoutService.Stats(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err, "failed to compute workout stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
