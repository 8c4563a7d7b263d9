package recommendation

import (
	"math"

	"github.com/pageza/fittrack/backend/internal/nutrition"
)

const (
	preferredFoodFactor = 1.1
	heavyWeightKg       = 80
	heavyFactor         = 1.1
	lightWeightKg       = 60
	lightFactor         = 0.9
)

// AdjustQuantity personalises a template portion. Foods the user eats often
// get a 10% bump, and the portion then scales with body weight. This is a
// heuristic, not a nutritional guarantee.
func AdjustQuantity(item nutrition.FoodItem, profile nutrition.Profile, prefs PreferenceSummary) int {
	qty := item.Quantity
	if prefs.CommonFoods[item.Name] > 0 {
		qty *= preferredFoodFactor
	}

	switch {
	case profile.WeightKg > heavyWeightKg:
		qty *= heavyFactor
	case profile.WeightKg < lightWeightKg:
		qty *= lightFactor
	}

	return int(math.Round(qty))
}
