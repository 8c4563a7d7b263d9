package nutrition

import (
	"math"
	"strings"
)

// Sex is the biological sex used by the BMR formula.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// FitnessGoal drives the calorie target and template selection.
type FitnessGoal string

const (
	WeightLoss  FitnessGoal = "weight_loss"
	WeightGain  FitnessGoal = "weight_gain"
	MuscleGain  FitnessGoal = "muscle_gain"
	Maintenance FitnessGoal = "maintenance"
)

// Goals lists every recognised goal.
var Goals = []FitnessGoal{WeightLoss, WeightGain, MuscleGain, Maintenance}

// ParseFitnessGoal maps a raw value onto a known goal. Anything unrecognised,
// including the empty string, resolves to Maintenance.
func ParseFitnessGoal(raw string) FitnessGoal {
	switch g := FitnessGoal(strings.TrimSpace(raw)); g {
	case WeightLoss, WeightGain, MuscleGain, Maintenance:
		return g
	default:
		return Maintenance
	}
}

// Valid reports whether g is one of the known goals.
func (g FitnessGoal) Valid() bool {
	switch g {
	case WeightLoss, WeightGain, MuscleGain, Maintenance:
		return true
	}
	return false
}

// ActivityMultiplier is the moderate-activity factor applied to BMR.
const ActivityMultiplier = 1.5

var goalFactors = map[FitnessGoal]float64{
	WeightLoss:  0.8,
	WeightGain:  1.2,
	MuscleGain:  1.1,
	Maintenance: 1.0,
}

// Profile is the slice of a user's account data the calculators need.
type Profile struct {
	Sex         Sex
	Age         int
	HeightCm    float64
	WeightKg    float64
	FitnessGoal FitnessGoal
}

// Complete reports whether every field the BMR formula reads is usable.
// The calculators themselves do not check this.
func (p Profile) Complete() bool {
	return p.Sex != "" && p.Age >= 0 && p.HeightCm > 0 && p.WeightKg > 0
}

// BMR returns the revised Harris-Benedict basal metabolic rate.
func BMR(p Profile) float64 {
	if p.Sex == Male {
		return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
	}
	return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
}

// DailyCalorieTarget returns the goal-adjusted daily calories for a moderately
// active person.
func DailyCalorieTarget(p Profile) int {
	factor, ok := goalFactors[p.FitnessGoal]
	if !ok {
		factor = 1.0
	}
	return int(math.Round(BMR(p) * ActivityMultiplier * factor))
}
