package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/nutrition"
	"github.com/pageza/fittrack/backend/internal/recommendation"
	"github.com/pageza/fittrack/backend/internal/types"
)

// DefaultRecentMealWindow is how many recent meals feed the preference analysis.
const DefaultRecentMealWindow = 10

// RecommendationService connects stored profiles and meal history to the
// recommendation generator.
type RecommendationService struct {
	db        *gorm.DB
	profiles  IProfileService
	meals     IMealService
	generator *recommendation.Generator
	window    int
}

var _ IRecommendationService = (*RecommendationService)(nil)

func NewRecommendationService(db *gorm.DB, profiles IProfileService, meals IMealService, generator *recommendation.Generator, window int) *RecommendationService {
	if window < 1 || window > DefaultRecentMealWindow {
		window = DefaultRecentMealWindow
	}
	return &RecommendationService{
		db:        db,
		profiles:  profiles,
		meals:     meals,
		generator: generator,
		window:    window,
	}
}

// Recommend returns personalised meal suggestions for the user. The profile
// must carry sex, age, height and weight.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, mealType string) (*types.RecommendationResponse, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !profile.Complete() {
		return nil, ErrIncompleteProfile
	}
	np := profile.NutritionProfile()

	meals, err := s.meals.RecentMeals(ctx, userID, s.window)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent meals: %w", err)
	}

	recs := s.generator.Generate(np, toMealRecords(meals), mealType)
	log.Printf("[RecommendationService] Generated %d recommendations for user %s (goal=%s, recent meals=%d)",
		len(recs), userID, np.FitnessGoal, len(meals))

	return &types.RecommendationResponse{
		DailyCalorieTarget: nutrition.DailyCalorieTarget(np),
		Recommendations:    recs,
	}, nil
}

func toMealRecords(meals []models.Meal) []recommendation.MealRecord {
	records := make([]recommendation.MealRecord, len(meals))
	for i, m := range meals {
		mealType, ok := recommendation.ParseMealType(m.MealType)
		if !ok {
			mealType = recommendation.MealType(m.MealType)
		}
		records[i] = recommendation.MealRecord{
			MealType:      mealType,
			FoodItems:     m.FoodItems,
			TotalCalories: m.TotalCalories,
			TotalProtein:  m.TotalProtein,
		}
	}
	return records
}

// Accept logs a recommended meal as eaten.
func (s *RecommendationService) Accept(ctx context.Context, userID uuid.UUID, req *types.AcceptRecommendationRequest) (*models.Meal, error) {
	return s.meals.CreateMeal(ctx, userID, &types.MealRequest{
		MealType:  req.MealType,
		Name:      req.Name,
		EatenAt:   req.EatenAt,
		FoodItems: req.FoodItems,
	})
}

// Rate stores the user's score for a recommended meal.
func (s *RecommendationService) Rate(ctx context.Context, userID uuid.UUID, req *types.RateRecommendationRequest) (*models.MealRating, error) {
	mealType, ok := recommendation.ParseMealType(req.MealType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, req.MealType)
	}
	if req.Score < 1 || req.Score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", ErrInvalidInput)
	}

	rating := &models.MealRating{
		UserID:             userID,
		RecommendationName: strings.TrimSpace(req.Name),
		MealType:           string(mealType),
		Score:              req.Score,
		Comment:            req.Comment,
	}
	if err := s.db.WithContext(ctx).Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RecommendationService) ListRatings(ctx context.Context, userID uuid.UUID) ([]models.MealRating, error) {
	var ratings []models.MealRating
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}
