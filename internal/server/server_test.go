package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/testhelpers"
)

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func (c *client) call(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func newTestServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)
	return New(config.Default(), Deps{DB: testhelpers.SetupSQLiteDB(t)})
}

func TestHealth(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t).Handler()}

	status, body := c.call(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestRecommendationFlow(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t).Handler()}

	status, body := c.call(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "alice@example.com", "password": "password123", "username": "alice",
	})
	require.Equal(t, http.StatusCreated, status, body)
	c.token = body["token"].(string)

	status, _ = c.call(http.MethodGet, "/api/v1/recommendations/meals", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, body = c.call(http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"sex": "male", "age": 30, "height_cm": 180, "weight_kg": 80, "fitness_goal": "maintenance",
	})
	require.Equal(t, http.StatusOK, status, body)

	status, body = c.call(http.MethodGet, "/api/v1/recommendations/meals?mealType=lunch", nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, float64(2780), body["dailyCalorieTarget"])
	recs := body["recommendations"].([]interface{})
	require.Len(t, recs, 1)
	lunch := recs[0].(map[string]interface{})
	assert.Equal(t, "Lunch", lunch["mealType"])

	status, body = c.call(http.MethodPost, "/api/v1/recommendations/meals/accept", map[string]interface{}{
		"meal_type":  lunch["mealType"],
		"name":       lunch["name"],
		"food_items": lunch["foodItems"],
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = c.call(http.MethodGet, "/api/v1/meals", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["meals"], 1)
}

func TestWorkoutPointsReachLeaderboard(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t).Handler()}

	status, body := c.call(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "bob@example.com", "password": "password123", "username": "bob",
	})
	require.Equal(t, http.StatusCreated, status, body)
	c.token = body["token"].(string)

	status, body = c.call(http.MethodPost, "/api/v1/workouts", map[string]interface{}{
		"type": "strength", "name": "Leg day", "duration_minutes": 45,
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = c.call(http.MethodGet, "/api/v1/leaderboard", nil)
	require.Equal(t, http.StatusOK, status)
	entries := body["leaderboard"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].(map[string]interface{})["username"])
	assert.Equal(t, float64(10), entries[0].(map[string]interface{})["points"])

	status, _ = c.call(http.MethodGet, "/api/v1/admin/users", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestMealListToDateCoversWholeDay(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t).Handler()}

	status, body := c.call(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "carol@example.com", "password": "password123", "username": "carol",
	})
	require.Equal(t, http.StatusCreated, status, body)
	c.token = body["token"].(string)

	for _, eatenAt := range []string{"2024-03-05T12:00:00Z", "2024-03-06T08:00:00Z"} {
		status, body = c.call(http.MethodPost, "/api/v1/meals", map[string]interface{}{
			"meal_type": "lunch",
			"eaten_at":  eatenAt,
			"food_items": []map[string]interface{}{
				{"name": "Rice", "quantity": 150, "unit": "g", "calories": 195, "protein": 4, "carbs": 42, "fat": 0.5},
			},
		})
		require.Equal(t, http.StatusCreated, status, body)
	}

	status, body = c.call(http.MethodGet, "/api/v1/meals?from=2024-03-05&to=2024-03-05", nil)
	require.Equal(t, http.StatusOK, status, body)
	meals := body["meals"].([]interface{})
	require.Len(t, meals, 1)
	assert.Equal(t, "2024-03-05T12:00:00Z", meals[0].(map[string]interface{})["eaten_at"])

	status, body = c.call(http.MethodGet, "/api/v1/meals?to=2024-03-05T11:00:00Z", nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Empty(t, body["meals"])
}
