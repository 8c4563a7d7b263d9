package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/internal/nutrition"
)

func TestTemplatesForEveryGoal(t *testing.T) {
	for _, goal := range nutrition.Goals {
		templates := TemplatesFor(goal)
		require.Len(t, templates, len(MealTypes), "goal %s", goal)
		for i, tmpl := range templates {
			assert.Equal(t, MealTypes[i], tmpl.MealType, "goal %s template %d", goal, i)
			assert.NotEmpty(t, tmpl.FoodItems)
			assert.Greater(t, tmpl.CalorieShare, 0.0)
			assert.Less(t, tmpl.CalorieShare, 1.0)
		}
	}
}

func TestTemplatesForUnknownGoalFallsBackToMaintenance(t *testing.T) {
	maintenance := TemplatesFor(nutrition.Maintenance)
	for _, goal := range []nutrition.FitnessGoal{"", "bulk", "WEIGHT_LOSS"} {
		assert.Equal(t, maintenance, TemplatesFor(goal), "goal %q", goal)
	}
}

func TestTemplatesForReturnsCopies(t *testing.T) {
	first := TemplatesFor(nutrition.WeightLoss)
	original := first[0].FoodItems[0].Quantity
	first[0].FoodItems[0].Quantity = 9999
	first[0].Tags[0] = "mutated"

	second := TemplatesFor(nutrition.WeightLoss)
	assert.Equal(t, original, second[0].FoodItems[0].Quantity)
	assert.NotEqual(t, "mutated", second[0].Tags[0])
}

func TestEstimatedCaloriesFollowsTarget(t *testing.T) {
	tmpl := MealTemplate{CalorieShare: 0.35}
	assert.Equal(t, 700, tmpl.EstimatedCalories(2000))
	assert.Equal(t, 1252, tmpl.EstimatedCalories(3578))
	assert.Equal(t, 0, tmpl.EstimatedCalories(0))
}

func TestParseMealType(t *testing.T) {
	mt, ok := ParseMealType("breakfast")
	assert.True(t, ok)
	assert.Equal(t, Breakfast, mt)

	mt, ok = ParseMealType(" SNACK ")
	assert.True(t, ok)
	assert.Equal(t, Snack, mt)

	_, ok = ParseMealType("brunch")
	assert.False(t, ok)
}
