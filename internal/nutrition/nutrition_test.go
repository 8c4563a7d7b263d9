package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	items := []FoodItem{
		{Name: "Oats", Calories: 150, Protein: 5, Carbs: 27, Fat: 3},
		{Name: "Milk", Calories: 100, Protein: 8, Carbs: 12, Fat: 2.5},
	}

	got := Sum(items)
	assert.Equal(t, Nutrition{Calories: 250, Protein: 13, Carbs: 39, Fat: 5.5}, got)
	assert.Equal(t, Nutrition{}, Sum(nil))
}

func TestDailyCalorieTarget(t *testing.T) {
	p := Profile{Sex: Male, Age: 30, HeightCm: 180, WeightKg: 90, FitnessGoal: WeightGain}

	assert.InDelta(t, 1987.602, BMR(p), 1e-9)
	assert.Equal(t, 3578, DailyCalorieTarget(p))
}

func TestDailyCalorieTargetGoalFactors(t *testing.T) {
	base := Profile{Sex: Female, Age: 25, HeightCm: 165, WeightKg: 60}
	bmr := BMR(base)
	assert.InDelta(t, 447.593+9.247*60+3.098*165-4.330*25, bmr, 1e-9)

	cases := map[FitnessGoal]float64{
		WeightLoss:  0.8,
		WeightGain:  1.2,
		MuscleGain:  1.1,
		Maintenance: 1.0,
		"bulk":      1.0,
	}
	for goal, factor := range cases {
		p := base
		p.FitnessGoal = goal
		want := int(bmr*1.5*factor + 0.5)
		assert.Equal(t, want, DailyCalorieTarget(p), "goal %q", goal)
	}
}

func TestParseFitnessGoal(t *testing.T) {
	assert.Equal(t, WeightLoss, ParseFitnessGoal("weight_loss"))
	assert.Equal(t, MuscleGain, ParseFitnessGoal(" muscle_gain "))
	assert.Equal(t, Maintenance, ParseFitnessGoal(""))
	assert.Equal(t, Maintenance, ParseFitnessGoal("WEIGHT_LOSS"))
	assert.Equal(t, Maintenance, ParseFitnessGoal("shred"))
}

func TestProfileComplete(t *testing.T) {
	assert.True(t, Profile{Sex: Male, Age: 30, HeightCm: 180, WeightKg: 80}.Complete())
	assert.False(t, Profile{Sex: Male, Age: 30, HeightCm: 180}.Complete())
	assert.False(t, Profile{Age: 30, HeightCm: 180, WeightKg: 80}.Complete())
	assert.True(t, Profile{Sex: Female, Age: 0, HeightCm: 75, WeightKg: 10}.Complete())
	assert.False(t, Profile{Sex: Female, Age: -1, HeightCm: 75, WeightKg: 10}.Complete())
}
