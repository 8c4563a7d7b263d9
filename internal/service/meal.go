package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/nutrition"
	"github.com/pageza/fittrack/backend/internal/recommendation"
	"github.com/pageza/fittrack/backend/internal/types"
)

type MealService struct {
	db *gorm.DB
}

var _ IMealService = (*MealService)(nil)

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// applyMeal copies req onto m. Totals are always recomputed from the food items.
func applyMeal(m *models.Meal, req *types.MealRequest) error {
	mealType, ok := recommendation.ParseMealType(req.MealType)
	if !ok {
		return fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, req.MealType)
	}
	for _, item := range req.FoodItems {
		if item.Name == "" || item.Quantity < 0 || item.Calories < 0 || item.Protein < 0 || item.Carbs < 0 || item.Fat < 0 {
			return fmt.Errorf("%w: food items need a name and non-negative amounts", ErrInvalidInput)
		}
	}

	totals := nutrition.Sum(req.FoodItems)
	m.MealType = string(mealType)
	m.Name = req.Name
	m.FoodItems = models.FoodItems(req.FoodItems)
	m.TotalCalories = totals.Calories
	m.TotalProtein = totals.Protein
	m.TotalCarbs = totals.Carbs
	m.TotalFat = totals.Fat
	m.Notes = req.Notes
	if req.EatenAt != nil {
		m.EatenAt = req.EatenAt.UTC()
	} else if m.EatenAt.IsZero() {
		m.EatenAt = time.Now().UTC()
	}
	return nil
}

func (s *MealService) CreateMeal(ctx context.Context, userID uuid.UUID, req *types.MealRequest) (*models.Meal, error) {
	meal := &models.Meal{UserID: userID}
	if err := applyMeal(meal, req); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) GetMeal(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&meal).Error; err != nil {
		return nil, dbErr(err)
	}
	return &meal, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.Meal, int64, error) {
	opts = opts.Normalize()
	q := window(s.db.WithContext(ctx).Model(&models.Meal{}).Where("user_id = ?", userID), "eaten_at", opts)

	var meals []models.Meal
	total, err := page(q, opts, "eaten_at DESC", &meals)
	if err != nil {
		return nil, 0, err
	}
	return meals, total, nil
}

func (s *MealService) UpdateMeal(ctx context.Context, userID, id uuid.UUID, req *types.MealRequest) (*models.Meal, error) {
	meal, err := s.GetMeal(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := applyMeal(meal, req); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DailySummary totals the meals eaten on the UTC calendar day containing day.
func (s *MealService) DailySummary(ctx context.Context, userID uuid.UUID, day time.Time) (*types.DailySummary, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	summary := &types.DailySummary{
		Date:       start.Format("2006-01-02"),
		MealCount:  len(meals),
		ByMealType: map[string]nutrition.Nutrition{},
	}
	for _, m := range meals {
		n := nutrition.Nutrition{Calories: m.TotalCalories, Protein: m.TotalProtein, Carbs: m.TotalCarbs, Fat: m.TotalFat}
		summary.Totals = addNutrition(summary.Totals, n)
		summary.ByMealType[m.MealType] = addNutrition(summary.ByMealType[m.MealType], n)
	}
	return summary, nil
}

func addNutrition(a, b nutrition.Nutrition) nutrition.Nutrition {
	return nutrition.Nutrition{
		Calories: a.Calories + b.Calories,
		Protein:  a.Protein + b.Protein,
		Carbs:    a.Carbs + b.Carbs,
		Fat:      a.Fat + b.Fat,
	}
}

// RecentMeals returns the user's n most recent meals, newest first.
func (s *MealService) RecentMeals(ctx context.Context, userID uuid.UUID, n int) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("eaten_at DESC").Order("created_at DESC").
		Limit(n).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
