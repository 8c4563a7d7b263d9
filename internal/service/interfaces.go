package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, *models.UserProfile, error)
	Login(ctx context.Context, email, password string) (*models.User, *models.UserProfile, error)
	GenerateToken(user *models.User, profile *models.UserProfile) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	CalorieTarget(ctx context.Context, userID uuid.UUID) (*types.CalorieTargetResponse, error)
}

type IWorkoutService interface {
	CreateWorkout(ctx context.Context, userID uuid.UUID, req *types.WorkoutRequest) (*models.Workout, error)
	GetWorkout(ctx context.Context, userID, id uuid.UUID) (*models.Workout, error)
	ListWorkouts(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.Workout, int64, error)
	UpdateWorkout(ctx context.Context, userID, id uuid.UUID, req *types.WorkoutRequest) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID, opts types.ListOptions) (*types.WorkoutStats, error)
}

type IMealService interface {
	CreateMeal(ctx context.Context, userID uuid.UUID, req *types.MealRequest) (*models.Meal, error)
	GetMeal(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.Meal, int64, error)
	UpdateMeal(ctx context.Context, userID, id uuid.UUID, req *types.MealRequest) (*models.Meal, error)
	DeleteMeal(ctx context.Context, userID, id uuid.UUID) error
	DailySummary(ctx context.Context, userID uuid.UUID, day time.Time) (*types.DailySummary, error)
	RecentMeals(ctx context.Context, userID uuid.UUID, n int) ([]models.Meal, error)
}

type IProgressService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *types.ProgressRequest) (*models.ProgressEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.ProgressEntry, int64, error)
	DeleteEntry(ctx context.Context, userID, id uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*types.ProgressSummary, error)
	UploadPhoto(ctx context.Context, userID, entryID uuid.UUID, filename, contentType string, body io.Reader) (*types.PhotoUploadResponse, error)
}

type IChallengeService interface {
	CreateChallenge(ctx context.Context, creatorID uuid.UUID, req *types.ChallengeRequest) (*models.Challenge, error)
	ListChallenges(ctx context.Context, activeOnly bool, opts types.ListOptions) ([]models.Challenge, int64, error)
	GetChallenge(ctx context.Context, id uuid.UUID) (*models.Challenge, error)
	Join(ctx context.Context, challengeID, userID uuid.UUID) (*models.ChallengeParticipant, error)
	Leave(ctx context.Context, challengeID, userID uuid.UUID) error
	UpdateProgress(ctx context.Context, challengeID, userID uuid.UUID, progress float64) (*models.ChallengeParticipant, error)
	Standings(ctx context.Context, challengeID uuid.UUID) ([]types.ChallengeStanding, error)
}

type IForumService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req *types.ForumPostRequest) (*models.ForumPost, error)
	ListPosts(ctx context.Context, category string, opts types.ListOptions) ([]models.ForumPost, int64, error)
	GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error)
	DeletePost(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error
	AddComment(ctx context.Context, postID, authorID uuid.UUID, req *types.ForumCommentRequest) (*models.ForumComment, error)
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*types.LikeResponse, error)
}

type ILeaderboardService interface {
	PointsAwarder
	Top(ctx context.Context, limit int) ([]types.LeaderboardEntry, error)
}

// PointsAwarder credits leaderboard points for an activity.
type PointsAwarder interface {
	AwardPoints(ctx context.Context, userID uuid.UUID, points int64) error
}

type IRecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID, mealType string) (*types.RecommendationResponse, error)
	Accept(ctx context.Context, userID uuid.UUID, req *types.AcceptRecommendationRequest) (*models.Meal, error)
	Rate(ctx context.Context, userID uuid.UUID, req *types.RateRecommendationRequest) (*models.MealRating, error)
	ListRatings(ctx context.Context, userID uuid.UUID) ([]models.MealRating, error)
}

type IAdminService interface {
	ListUsers(ctx context.Context, opts types.ListOptions) ([]types.UserResponse, int64, error)
	SetRole(ctx context.Context, userID uuid.UUID, role string) (*models.User, error)
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error
}

// ObjectStore is the blob storage progress photos are written to.
// config.S3Config satisfies it.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	GeneratePresignedURL(ctx context.Context, key string) (string, error)
}
