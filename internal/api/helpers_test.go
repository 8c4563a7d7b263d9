package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/testhelpers/mocks"
	"github.com/pageza/fittrack/backend/internal/types"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

type testEnv struct {
	router         *gin.Engine
	userID         uuid.UUID
	adminID        uuid.UUID
	auth           *mocks.MockAuthService
	profile        *mocks.MockProfileService
	workout        *mocks.MockWorkoutService
	meal           *mocks.MockMealService
	progress       *mocks.MockProgressService
	challenge      *mocks.MockChallengeService
	forum          *mocks.MockForumService
	leaderboard    *mocks.MockLeaderboardService
	recommendation *mocks.MockRecommendationService
	admin          *mocks.MockAdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		router:         gin.New(),
		userID:         uuid.New(),
		adminID:        uuid.New(),
		auth:           new(mocks.MockAuthService),
		profile:        new(mocks.MockProfileService),
		workout:        new(mocks.MockWorkoutService),
		meal:           new(mocks.MockMealService),
		progress:       new(mocks.MockProgressService),
		challenge:      new(mocks.MockChallengeService),
		forum:          new(mocks.MockForumService),
		leaderboard:    new(mocks.MockLeaderboardService),
		recommendation: new(mocks.MockRecommendationService),
		admin:          new(mocks.MockAdminService),
	}

	env.auth.On("ValidateToken", userToken).Return(&types.TokenClaims{UserID: env.userID, Username: "alice", Role: models.RoleUser}, nil).Maybe()
	env.auth.On("ValidateToken", adminToken).Return(&types.TokenClaims{UserID: env.adminID, Username: "root", Role: models.RoleAdmin}, nil).Maybe()

	SetupAPI(env.router, Services{
		Auth:           env.auth,
		Profile:        env.profile,
		Workout:        env.workout,
		Meal:           env.meal,
		Progress:       env.progress,
		Challenge:      env.challenge,
		Forum:          env.forum,
		Leaderboard:    env.leaderboard,
		Recommendation: env.recommendation,
		Admin:          env.admin,
	}, nil, nil)

	t.Cleanup(func() {
		for _, m := range []interface{ AssertExpectations(mock.TestingT) bool }{
			env.auth, env.profile, env.workout, env.meal, env.progress,
			env.challenge, env.forum, env.leaderboard, env.recommendation, env.admin,
		} {
			m.AssertExpectations(t)
		}
	})
	return env
}

// do sends a request with an optional JSON body and bearer token.
func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decode(t, w)["error"].(string)
	return msg
}
