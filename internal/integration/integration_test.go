package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/server"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/testhelpers"
)

// stack runs the full HTTP server against Postgres and Redis containers.
type stack struct {
	t       *testing.T
	handler http.Handler
	deps    server.Deps
}

func newStack(t *testing.T, rateLimit int) *stack {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	gin.SetMode(gin.TestMode)

	db, _ := testhelpers.SetupPostgresDB(t)
	deps := server.Deps{DB: db, Redis: testhelpers.SetupRedis(t)}

	cfg := config.Default()
	cfg.RecommendationRateLimit = rateLimit
	return &stack{t: t, handler: server.New(cfg, deps).Handler(), deps: deps}
}

func (s *stack) call(method, path, token string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

// register creates an account and returns its token and id.
func (s *stack) register(username string) (string, uuid.UUID) {
	s.t.Helper()
	status, body := s.call(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": username + "@example.com", "password": "password123", "username": username,
	})
	require.Equal(s.t, http.StatusCreated, status, body)
	id, err := uuid.Parse(body["user"].(map[string]interface{})["id"].(string))
	require.NoError(s.t, err)
	return body["token"].(string), id
}

func (s *stack) login(username string) string {
	s.t.Helper()
	status, body := s.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": username + "@example.com", "password": "password123",
	})
	require.Equal(s.t, http.StatusOK, status, body)
	return body["token"].(string)
}

func TestLeaderboardServedFromRedis(t *testing.T) {
	s := newStack(t, 60)
	aliceToken, aliceID := s.register("alice")
	bobToken, _ := s.register("bob")

	for i := 0; i < 2; i++ {
		status, body := s.call(http.MethodPost, "/api/v1/workouts", aliceToken, map[string]interface{}{
			"type": "cardio", "name": "Run", "duration_minutes": 30,
		})
		require.Equal(t, http.StatusCreated, status, body)
	}
	status, body := s.call(http.MethodPost, "/api/v1/forum/posts", bobToken, map[string]string{
		"title": "Hello", "body": "First post",
	})
	require.Equal(t, http.StatusCreated, status, body)

	score, err := s.deps.Redis.ZScore(context.Background(), service.LeaderboardKey, aliceID.String()).Result()
	require.NoError(t, err)
	assert.Equal(t, float64(2*service.WorkoutPoints), score)

	status, body = s.call(http.MethodGet, "/api/v1/leaderboard", bobToken, nil)
	require.Equal(t, http.StatusOK, status)
	entries := body["leaderboard"].([]interface{})
	require.Len(t, entries, 2)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "alice", first["username"])
	assert.Equal(t, float64(20), first["points"])
}

func TestRecommendationsAreRateLimited(t *testing.T) {
	s := newStack(t, 2)
	token, _ := s.register("carol")

	status, _ := s.call(http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"sex": "female", "age": 28, "height_cm": 165, "weight_kg": 58, "fitness_goal": "muscle_gain",
	})
	require.Equal(t, http.StatusOK, status)

	for i := 0; i < 2; i++ {
		status, body := s.call(http.MethodGet, "/api/v1/recommendations/meals", token, nil)
		require.Equal(t, http.StatusOK, status, body)
		assert.Len(t, body["recommendations"], 4)
	}

	status, _ = s.call(http.MethodGet, "/api/v1/recommendations/meals", token, nil)
	assert.Equal(t, http.StatusTooManyRequests, status)

	// other endpoints are not limited
	status, _ = s.call(http.MethodGet, "/api/v1/recommendations/meals/ratings", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAdminDeletesUserOnPostgres(t *testing.T) {
	s := newStack(t, 60)
	_, adminID := s.register("root")
	daveToken, daveID := s.register("dave")
	erinToken, _ := s.register("erin")

	_, err := service.NewAdminService(s.deps.DB, nil).SetRole(context.Background(), adminID, models.RoleAdmin)
	require.NoError(t, err)
	adminToken := s.login("root")

	status, body := s.call(http.MethodPost, "/api/v1/forum/posts", daveToken, map[string]string{"title": "Hi", "body": "Hello"})
	require.Equal(t, http.StatusCreated, status, body)
	postID := body["post"].(map[string]interface{})["id"].(string)
	status, _ = s.call(http.MethodPost, "/api/v1/forum/posts/"+postID+"/comments", erinToken, map[string]string{"body": "Welcome"})
	require.Equal(t, http.StatusCreated, status)

	status, _ = s.call(http.MethodDelete, "/api/v1/admin/users/"+daveID.String(), adminToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = s.call(http.MethodGet, "/api/v1/forum/posts/"+postID, erinToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.call(http.MethodGet, "/api/v1/leaderboard", erinToken, nil)
	require.Equal(t, http.StatusOK, status)
	for _, e := range body["leaderboard"].([]interface{}) {
		assert.NotEqual(t, "dave", e.(map[string]interface{})["username"])
	}
}
