package recommendation

import (
	"math"
	"strings"

	"github.com/pageza/fittrack/backend/internal/nutrition"
)

// MealType classifies a meal within the day.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Snack     MealType = "Snack"
)

// MealTypes lists the meal types in daily order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// ParseMealType matches raw against the known meal types, ignoring case.
func ParseMealType(raw string) (MealType, bool) {
	raw = strings.TrimSpace(raw)
	for _, mt := range MealTypes {
		if strings.EqualFold(string(mt), raw) {
			return mt, true
		}
	}
	return "", false
}

// Difficulty rates how demanding a template is to prepare.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// MealRecord is a logged meal as seen by the preference analyzer.
type MealRecord struct {
	MealType      MealType
	FoodItems     []nutrition.FoodItem
	TotalCalories float64
	TotalProtein  float64
}

// PreferenceSummary captures what a user has been eating lately.
type PreferenceSummary struct {
	CommonFoods map[string]int   `json:"commonFoods"`
	MealTypes   map[MealType]int `json:"mealTypes"`
	AvgCalories float64          `json:"avgCalories"`
	AvgProtein  float64          `json:"avgProtein"`
}

// MealTemplate is a static meal blueprint. CalorieShare is the fraction of the
// day's calorie target the meal is meant to cover.
type MealTemplate struct {
	MealType     MealType
	Name         string
	Description  string
	CalorieShare float64
	FoodItems    []nutrition.FoodItem
	Benefits     []string
	Difficulty   Difficulty
	PrepTime     string
	Tags         []string
}

// EstimatedCalories applies the template's share to a daily target.
func (t MealTemplate) EstimatedCalories(target int) int {
	return int(math.Round(float64(target) * t.CalorieShare))
}

func (t MealTemplate) clone() MealTemplate {
	c := t
	c.FoodItems = append([]nutrition.FoodItem(nil), t.FoodItems...)
	c.Benefits = append([]string(nil), t.Benefits...)
	c.Tags = append([]string(nil), t.Tags...)
	return c
}

// Recommendation is a template personalised for one user.
type Recommendation struct {
	MealType          MealType             `json:"mealType"`
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	EstimatedCalories int                  `json:"estimatedCalories"`
	FoodItems         []nutrition.FoodItem `json:"foodItems"`
	Nutrition         nutrition.Nutrition  `json:"nutrition"`
	Benefits          []string             `json:"benefits"`
	Difficulty        Difficulty           `json:"difficulty"`
	PrepTime          string               `json:"prepTime"`
	Tags              []string             `json:"tags"`
}
