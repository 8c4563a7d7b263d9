package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/nutrition"
	"github.com/pageza/fittrack/backend/internal/recommendation"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required,min=3,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Role      string              `json:"role"`
	Username  string              `json:"username"`
	Points    int64               `json:"points"`
	CreatedAt time.Time           `json:"created_at"`
	Profile   *models.UserProfile `json:"profile,omitempty"`
}

// UpdateProfileRequest only touches fields that are present.
type UpdateProfileRequest struct {
	Username      *string  `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Bio           *string  `json:"bio,omitempty"`
	Sex           *string  `json:"sex,omitempty" binding:"omitempty,oneof=male female"`
	Age           *int     `json:"age,omitempty" binding:"omitempty,min=0,max=130"`
	HeightCm      *float64 `json:"height_cm,omitempty" binding:"omitempty,gt=0"`
	WeightKg      *float64 `json:"weight_kg,omitempty" binding:"omitempty,gt=0"`
	FitnessGoal   *string  `json:"fitness_goal,omitempty" binding:"omitempty,oneof=weight_loss weight_gain muscle_gain maintenance"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type CalorieTargetResponse struct {
	BMR                float64 `json:"bmr"`
	DailyCalories      int     `json:"daily_calories"`
	FitnessGoal        string  `json:"fitness_goal"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
}

type WorkoutRequest struct {
	Type            string            `json:"type" binding:"required,max=30"`
	Name            string            `json:"name" binding:"required,max=255"`
	DurationMinutes int               `json:"duration_minutes" binding:"required,min=1"`
	CaloriesBurned  float64           `json:"calories_burned" binding:"min=0"`
	PerformedAt     *time.Time        `json:"performed_at"`
	Exercises       []models.Exercise `json:"exercises"`
	Notes           string            `json:"notes"`
}

type WorkoutStats struct {
	Count          int            `json:"count"`
	TotalMinutes   int            `json:"total_minutes"`
	TotalCalories  float64        `json:"total_calories"`
	WorkoutsByType map[string]int `json:"workouts_by_type"`
}

type MealRequest struct {
	MealType  string               `json:"meal_type" binding:"required"`
	Name      string               `json:"name" binding:"max=255"`
	EatenAt   *time.Time           `json:"eaten_at"`
	FoodItems []nutrition.FoodItem `json:"food_items" binding:"required,min=1,dive"`
	Notes     string               `json:"notes"`
}

type DailySummary struct {
	Date       string                         `json:"date"`
	MealCount  int                            `json:"meal_count"`
	Totals     nutrition.Nutrition            `json:"totals"`
	ByMealType map[string]nutrition.Nutrition `json:"by_meal_type"`
}

type ProgressRequest struct {
	RecordedAt   *time.Time         `json:"recorded_at"`
	WeightKg     float64            `json:"weight_kg" binding:"required,gt=0"`
	BodyFatPct   *float64           `json:"body_fat_pct" binding:"omitempty,gte=0,lte=100"`
	Measurements map[string]float64 `json:"measurements"`
	Notes        string             `json:"notes"`
}

type ProgressSummary struct {
	EntryCount     int                   `json:"entry_count"`
	First          *models.ProgressEntry `json:"first,omitempty"`
	Latest         *models.ProgressEntry `json:"latest,omitempty"`
	WeightChangeKg float64               `json:"weight_change_kg"`
}

type PhotoUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ChallengeRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description"`
	Metric      string    `json:"metric" binding:"required,oneof=workouts minutes calories"`
	TargetValue float64   `json:"target_value" binding:"required,gt=0"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
}

type ChallengeProgressRequest struct {
	Progress float64 `json:"progress" binding:"min=0"`
}

type ChallengeStanding struct {
	UserID      string     `json:"user_id"`
	Username    string     `json:"username"`
	Progress    float64    `json:"progress"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ForumPostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required,max=10000"`
	Category string `json:"category" binding:"max=50"`
}

type ForumCommentRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
}

type RecommendationResponse struct {
	DailyCalorieTarget int                             `json:"dailyCalorieTarget"`
	Recommendations    []recommendation.Recommendation `json:"recommendations"`
}

type AcceptRecommendationRequest struct {
	MealType  string               `json:"meal_type" binding:"required"`
	Name      string               `json:"name" binding:"required"`
	FoodItems []nutrition.FoodItem `json:"food_items" binding:"required,min=1,dive"`
	EatenAt   *time.Time           `json:"eaten_at"`
}

type RateRecommendationRequest struct {
	Name     string `json:"name" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	Score    int    `json:"score" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=2000"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

// PaginationMeta describes a page of a listing.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// ListOptions are the common filters for owner-scoped listings.
type ListOptions struct {
	Page  int
	Limit int
	From  *time.Time
	To    *time.Time
	// ToWholeDay marks To as a calendar date, so the range runs to the end
	// of that UTC day.
	ToWholeDay bool
}

// Normalize clamps Page and Limit into their valid ranges.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultPageLimit
	}
	if o.Limit > MaxPageLimit {
		o.Limit = MaxPageLimit
	}
	return o
}

// Offset returns the row offset for the page.
func (o ListOptions) Offset() int {
	if o.Page < 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// NewPaginationMeta describes page of a listing with total rows.
func NewPaginationMeta(opts ListOptions, total int64) PaginationMeta {
	totalPages := 0
	if total > 0 && opts.Limit > 0 {
		totalPages = int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	}
	return PaginationMeta{
		Page:       opts.Page,
		Limit:      opts.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
