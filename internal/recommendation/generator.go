package recommendation

import (
	"strings"

	"github.com/pageza/fittrack/backend/internal/nutrition"
)

// Option configures a Generator.
type Option func(*Generator)

// WithStrictScaling makes the generator rescale each food item's macros to the
// adjusted quantity and total the adjusted items. Without it, quantities change
// but macros and totals stay at the template's base values.
func WithStrictScaling(strict bool) Option {
	return func(g *Generator) {
		g.strictScaling = strict
	}
}

// Generator turns catalog templates into personalised recommendations. It
// holds no per-request state and is safe for concurrent use.
type Generator struct {
	strictScaling bool
}

// NewGenerator creates a new Generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds recommendations for profile from the catalog entry of its
// fitness goal, in catalog order. A non-empty mealTypeFilter keeps only
// templates whose meal type matches it case-insensitively.
func (g *Generator) Generate(profile nutrition.Profile, recentMeals []MealRecord, mealTypeFilter string) []Recommendation {
	target := nutrition.DailyCalorieTarget(profile)
	prefs := AnalyzePreferences(recentMeals)
	mealTypeFilter = strings.TrimSpace(mealTypeFilter)

	recs := make([]Recommendation, 0, len(MealTypes))
	for _, tmpl := range TemplatesFor(profile.FitnessGoal) {
		if mealTypeFilter != "" && !strings.EqualFold(string(tmpl.MealType), mealTypeFilter) {
			continue
		}
		recs = append(recs, g.build(tmpl, profile, prefs, target))
	}
	return recs
}

func (g *Generator) build(tmpl MealTemplate, profile nutrition.Profile, prefs PreferenceSummary, target int) Recommendation {
	items := make([]nutrition.FoodItem, len(tmpl.FoodItems))
	for i, base := range tmpl.FoodItems {
		item := base
		item.Quantity = float64(AdjustQuantity(base, profile, prefs))
		if g.strictScaling && base.Quantity > 0 {
			ratio := item.Quantity / base.Quantity
			item.Calories = base.Calories * ratio
			item.Protein = base.Protein * ratio
			item.Carbs = base.Carbs * ratio
			item.Fat = base.Fat * ratio
		}
		items[i] = item
	}

	totals := nutrition.Sum(tmpl.FoodItems)
	if g.strictScaling {
		totals = nutrition.Sum(items)
	}

	return Recommendation{
		MealType:          tmpl.MealType,
		Name:              tmpl.Name,
		Description:       tmpl.Description,
		EstimatedCalories: tmpl.EstimatedCalories(target),
		FoodItems:         items,
		Nutrition:         totals,
		Benefits:          tmpl.Benefits,
		Difficulty:        tmpl.Difficulty,
		PrepTime:          tmpl.PrepTime,
		Tags:              tmpl.Tags,
	}
}
