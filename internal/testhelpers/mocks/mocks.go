package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

var (
	_ service.IAuthService           = (*MockAuthService)(nil)
	_ service.IProfileService        = (*MockProfileService)(nil)
	_ service.IWorkoutService        = (*MockWorkoutService)(nil)
	_ service.IMealService           = (*MockMealService)(nil)
	_ service.IProgressService       = (*MockProgressService)(nil)
	_ service.IChallengeService      = (*MockChallengeService)(nil)
	_ service.IForumService          = (*MockForumService)(nil)
	_ service.ILeaderboardService    = (*MockLeaderboardService)(nil)
	_ service.IRecommendationService = (*MockRecommendationService)(nil)
	_ service.IAdminService          = (*MockAdminService)(nil)
)

// MockAuthService is a mock implementation of IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, *models.UserProfile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(*models.UserProfile), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, *models.UserProfile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(*models.UserProfile), args.Error(2)
}

func (m *MockAuthService) GenerateToken(user *models.User, profile *models.UserProfile) (string, error) {
	args := m.Called(user, profile)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

// MockProfileService is a mock implementation of IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) CalorieTarget(ctx context.Context, userID uuid.UUID) (*types.CalorieTargetResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.CalorieTargetResponse), args.Error(1)
}

type MockWorkoutService struct {
	mock.Mock
}

func (m *MockWorkoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, req *types.WorkoutRequest) (*models.Workout, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutService) GetWorkout(ctx context.Context, userID, id uuid.UUID) (*models.Workout, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutService) ListWorkouts(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.Workout, int64, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Workout), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkoutService) UpdateWorkout(ctx context.Context, userID, id uuid.UUID, req *types.WorkoutRequest) (*models.Workout, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutService) DeleteWorkout(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockWorkoutService) Stats(ctx context.Context, userID uuid.UUID, opts types.ListOptions) (*types.WorkoutStats, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WorkoutStats), args.Error(1)
}

type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) CreateMeal(ctx context.Context, userID uuid.UUID, req *types.MealRequest) (*models.Meal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) GetMeal(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) ListMeals(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.Meal, int64, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Meal), args.Get(1).(int64), args.Error(2)
}

func (m *MockMealService) UpdateMeal(ctx context.Context, userID, id uuid.UUID, req *types.MealRequest) (*models.Meal, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) DeleteMeal(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockMealService) DailySummary(ctx context.Context, userID uuid.UUID, day time.Time) (*types.DailySummary, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DailySummary), args.Error(1)
}

func (m *MockMealService) RecentMeals(ctx context.Context, userID uuid.UUID, n int) ([]models.Meal, error) {
	args := m.Called(ctx, userID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.ProgressRequest) (*models.ProgressEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressEntry), args.Error(1)
}

func (m *MockProgressService) ListEntries(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.ProgressEntry, int64, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.ProgressEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockProgressService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockProgressService) Summary(ctx context.Context, userID uuid.UUID) (*types.ProgressSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProgressSummary), args.Error(1)
}

// UploadPhoto records the call without reading body.
func (m *MockProgressService) UploadPhoto(ctx context.Context, userID, entryID uuid.UUID, filename, contentType string, body io.Reader) (*types.PhotoUploadResponse, error) {
	args := m.Called(ctx, userID, entryID, filename, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PhotoUploadResponse), args.Error(1)
}

type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) CreateChallenge(ctx context.Context, creatorID uuid.UUID, req *types.ChallengeRequest) (*models.Challenge, error) {
	args := m.Called(ctx, creatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeService) ListChallenges(ctx context.Context, activeOnly bool, opts types.ListOptions) ([]models.Challenge, int64, error) {
	args := m.Called(ctx, activeOnly, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Challenge), args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeService) GetChallenge(ctx context.Context, id uuid.UUID) (*models.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeService) Join(ctx context.Context, challengeID, userID uuid.UUID) (*models.ChallengeParticipant, error) {
	args := m.Called(ctx, challengeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeParticipant), args.Error(1)
}

func (m *MockChallengeService) Leave(ctx context.Context, challengeID, userID uuid.UUID) error {
	return m.Called(ctx, challengeID, userID).Error(0)
}

func (m *MockChallengeService) UpdateProgress(ctx context.Context, challengeID, userID uuid.UUID, progress float64) (*models.ChallengeParticipant, error) {
	args := m.Called(ctx, challengeID, userID, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeParticipant), args.Error(1)
}

func (m *MockChallengeService) Standings(ctx context.Context, challengeID uuid.UUID) ([]types.ChallengeStanding, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ChallengeStanding), args.Error(1)
}

type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) CreatePost(ctx context.Context, authorID uuid.UUID, req *types.ForumPostRequest) (*models.ForumPost, error) {
	args := m.Called(ctx, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

func (m *MockForumService) ListPosts(ctx context.Context, category string, opts types.ListOptions) ([]models.ForumPost, int64, error) {
	args := m.Called(ctx, category, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.ForumPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockForumService) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

func (m *MockForumService) DeletePost(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error {
	return m.Called(ctx, id, userID, isAdmin).Error(0)
}

func (m *MockForumService) AddComment(ctx context.Context, postID, authorID uuid.UUID, req *types.ForumCommentRequest) (*models.ForumComment, error) {
	args := m.Called(ctx, postID, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumComment), args.Error(1)
}

func (m *MockForumService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*types.LikeResponse, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LikeResponse), args.Error(1)
}

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) AwardPoints(ctx context.Context, userID uuid.UUID, points int64) error {
	return m.Called(ctx, userID, points).Error(0)
}

func (m *MockLeaderboardService) Top(ctx context.Context, limit int) ([]types.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.LeaderboardEntry), args.Error(1)
}

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, userID uuid.UUID, mealType string) (*types.RecommendationResponse, error) {
	args := m.Called(ctx, userID, mealType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecommendationResponse), args.Error(1)
}

func (m *MockRecommendationService) Accept(ctx context.Context, userID uuid.UUID, req *types.AcceptRecommendationRequest) (*models.Meal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockRecommendationService) Rate(ctx context.Context, userID uuid.UUID, req *types.RateRecommendationRequest) (*models.MealRating, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealRating), args.Error(1)
}

func (m *MockRecommendationService) ListRatings(ctx context.Context, userID uuid.UUID) ([]models.MealRating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealRating), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context, opts types.ListOptions) ([]types.UserResponse, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]types.UserResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminService) SetRole(ctx context.Context, userID uuid.UUID, role string) (*models.User, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	return m.Called(ctx, actorID, userID).Error(0)
}
