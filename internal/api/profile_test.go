package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

func TestUpdateProfileOnlySendsPresentFields(t *testing.T) {
	env := newTestEnv(t)
	age := 30
	env.profile.On("UpdateProfile", mock.Anything, env.userID, mock.MatchedBy(func(r *types.UpdateProfileRequest) bool {
		return r.Age != nil && *r.Age == 30 && r.Sex == nil && r.WeightKg == nil
	})).Return(&models.UserProfile{Username: "alice", Age: &age}, nil)

	w := env.do(http.MethodPut, "/api/v1/profile", userToken, map[string]int{"age": 30})
	assert.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)["profile"].(map[string]interface{})
	assert.Equal(t, float64(30), profile["age"])
}

func TestUpdateProfileRejectsUnknownGoal(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/api/v1/profile", userToken, map[string]string{"fitness_goal": "bulk"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalorieTarget(t *testing.T) {
	env := newTestEnv(t)
	env.profile.On("CalorieTarget", mock.Anything, env.userID).Return(&types.CalorieTargetResponse{
		BMR: 1853.632, DailyCalories: 2780, FitnessGoal: "maintenance", ActivityMultiplier: 1.5,
	}, nil)

	w := env.do(http.MethodGet, "/api/v1/profile/calorie-target", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2780), decode(t, w)["daily_calories"])
}

func TestCalorieTargetIncompleteProfile(t *testing.T) {
	env := newTestEnv(t)
	env.profile.On("CalorieTarget", mock.Anything, env.userID).Return(nil, service.ErrIncompleteProfile)

	w := env.do(http.MethodGet, "/api/v1/profile/calorie-target", userToken, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	env.auth.On("ChangePassword", mock.Anything, env.userID, "old-password", "new-password1").Return(nil)
	env.auth.On("ChangePassword", mock.Anything, env.userID, "wrong", "new-password1").Return(service.ErrInvalidCredentials)

	w := env.do(http.MethodPut, "/api/v1/profile/password", userToken, map[string]string{
		"current_password": "old-password", "new_password": "new-password1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPut, "/api/v1/profile/password", userToken, map[string]string{
		"current_password": "wrong", "new_password": "new-password1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
