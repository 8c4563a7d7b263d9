package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

func TestCreateWorkout(t *testing.T) {
	env := newTestEnv(t)
	env.workout.On("CreateWorkout", mock.Anything, env.userID, mock.MatchedBy(func(r *types.WorkoutRequest) bool {
		return r.Name == "Morning run" && r.DurationMinutes == 30
	})).Return(&models.Workout{Name: "Morning run", DurationMinutes: 30}, nil)

	w := env.do(http.MethodPost, "/api/v1/workouts", userToken, map[string]interface{}{
		"type": "cardio", "name": "Morning run", "duration_minutes": 30, "calories_burned": 280,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	workout := decode(t, w)["workout"].(map[string]interface{})
	assert.Equal(t, "Morning run", workout["name"])
}

func TestCreateWorkoutValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/workouts", userToken, map[string]interface{}{
		"type": "cardio", "name": "Run", "duration_minutes": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWorkoutsPagination(t *testing.T) {
	env := newTestEnv(t)
	env.workout.On("ListWorkouts", mock.Anything, env.userID, types.ListOptions{Page: 2, Limit: 5}).
		Return([]models.Workout{{Name: "Run"}}, int64(6), nil)

	w := env.do(http.MethodGet, "/api/v1/workouts?page=2&limit=5", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["workouts"], 1)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(6), pagination["total"])
	assert.Equal(t, float64(2), pagination["total_pages"])
}

func TestGetWorkout(t *testing.T) {
	env := newTestEnv(t)
	missing := uuid.New()
	env.workout.On("GetWorkout", mock.Anything, env.userID, missing).Return(nil, service.ErrNotFound)

	w := env.do(http.MethodGet, "/api/v1/workouts/"+missing.String(), userToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/api/v1/workouts/not-a-uuid", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWorkout(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.workout.On("DeleteWorkout", mock.Anything, env.userID, id).Return(nil)

	w := env.do(http.MethodDelete, "/api/v1/workouts/"+id.String(), userToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestWorkoutStats(t *testing.T) {
	env := newTestEnv(t)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	env.workout.On("Stats", mock.Anything, env.userID, mock.MatchedBy(func(o types.ListOptions) bool {
		return o.From != nil && o.From.Equal(from) && o.To == nil
	})).Return(&types.WorkoutStats{Count: 3, TotalMinutes: 90, WorkoutsByType: map[string]int{"cardio": 3}}, nil)

	w := env.do(http.MethodGet, "/api/v1/workouts/stats?from=2024-03-01", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(90), decode(t, w)["total_minutes"])

	w = env.do(http.MethodGet, "/api/v1/workouts/stats?from=yesterday", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
