package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/nutrition"
	"github.com/pageza/fittrack/backend/internal/types"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
)

// checkUsername applies the length rule to an already trimmed username.
func checkUsername(username string) error {
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return fmt.Errorf("%w: username must be %d to %d characters", ErrInvalidInput, minUsernameLen, maxUsernameLen)
	}
	return nil
}

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, dbErr(err)
	}
	return &profile, nil
}

// UpdateProfile applies the fields present in req
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if err := checkUsername(username); err != nil {
			return nil, err
		}
		if username != profile.Username {
			var count int64
			if err := s.db.WithContext(ctx).Model(&models.UserProfile{}).
				Where("username = ? AND user_id <> ?", username, userID).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, fmt.Errorf("%w: username is taken", ErrConflict)
			}
			profile.Username = username
		}
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Sex != nil {
		profile.Sex = *req.Sex
	}
	if req.Age != nil {
		if *req.Age < 0 {
			return nil, fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
		}
		age := *req.Age
		profile.Age = &age
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.FitnessGoal != nil {
		goal := nutrition.FitnessGoal(*req.FitnessGoal)
		if !goal.Valid() {
			return nil, fmt.Errorf("%w: unknown fitness goal %q", ErrInvalidInput, *req.FitnessGoal)
		}
		profile.FitnessGoal = string(goal)
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CalorieTarget reports the user's BMR and goal-adjusted daily calories.
func (s *ProfileService) CalorieTarget(ctx context.Context, userID uuid.UUID) (*types.CalorieTargetResponse, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !profile.Complete() {
		return nil, ErrIncompleteProfile
	}
	np := profile.NutritionProfile()

	return &types.CalorieTargetResponse{
		BMR:                nutrition.BMR(np),
		DailyCalories:      nutrition.DailyCalorieTarget(np),
		FitnessGoal:        string(np.FitnessGoal),
		ActivityMultiplier: nutrition.ActivityMultiplier,
	}, nil
}
