package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/nutrition"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

func TestCreateMeal(t *testing.T) {
	env := newTestEnv(t)
	env.meal.On("CreateMeal", mock.Anything, env.userID, mock.MatchedBy(func(r *types.MealRequest) bool {
		return r.MealType == "lunch" && len(r.FoodItems) == 1
	})).Return(&models.Meal{MealType: "Lunch", TotalCalories: 195}, nil)

	w := env.do(http.MethodPost, "/api/v1/meals", userToken, map[string]interface{}{
		"meal_type": "lunch",
		"food_items": []map[string]interface{}{
			{"name": "Rice", "quantity": 150, "unit": "g", "calories": 195, "protein": 4, "carbs": 42, "fat": 0.5},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	meal := decode(t, w)["meal"].(map[string]interface{})
	assert.Equal(t, "Lunch", meal["meal_type"])
}

func TestCreateMealValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"no food items", map[string]interface{}{"meal_type": "lunch", "food_items": []interface{}{}}},
		{"negative calories", map[string]interface{}{
			"meal_type":  "lunch",
			"food_items": []map[string]interface{}{{"name": "Rice", "calories": -5}},
		}},
		{"unnamed food", map[string]interface{}{
			"meal_type":  "lunch",
			"food_items": []map[string]interface{}{{"calories": 10}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/v1/meals", userToken, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateMealUnknownType(t *testing.T) {
	env := newTestEnv(t)
	env.meal.On("CreateMeal", mock.Anything, env.userID, mock.Anything).Return(nil, service.ErrInvalidInput)

	w := env.do(http.MethodPost, "/api/v1/meals", userToken, map[string]interface{}{
		"meal_type":  "brunch",
		"food_items": []nutrition.FoodItem{{Name: "Toast", Calories: 80}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailySummary(t *testing.T) {
	env := newTestEnv(t)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	env.meal.On("DailySummary", mock.Anything, env.userID, mock.MatchedBy(func(d time.Time) bool {
		return d.Equal(day)
	})).Return(&types.DailySummary{
		Date:       "2024-03-01",
		MealCount:  2,
		Totals:     nutrition.Nutrition{Calories: 700},
		ByMealType: map[string]nutrition.Nutrition{"Lunch": {Calories: 700}},
	}, nil)

	w := env.do(http.MethodGet, "/api/v1/meals/summary?date=2024-03-01", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "2024-03-01", body["date"])
	assert.Equal(t, float64(2), body["meal_count"])
}
