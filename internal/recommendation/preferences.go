package recommendation

// AnalyzePreferences tallies foods and meal types over the given meals and
// averages their precomputed calorie and protein totals. The caller bounds
// the window.
func AnalyzePreferences(meals []MealRecord) PreferenceSummary {
	summary := PreferenceSummary{
		CommonFoods: map[string]int{},
		MealTypes:   map[MealType]int{},
	}
	if len(meals) == 0 {
		return summary
	}

	var totalCalories, totalProtein float64
	for _, meal := range meals {
		totalCalories += meal.TotalCalories
		totalProtein += meal.TotalProtein
		summary.MealTypes[meal.MealType]++
		for _, item := range meal.FoodItems {
			summary.CommonFoods[item.Name]++
		}
	}

	n := float64(len(meals))
	summary.AvgCalories = totalCalories / n
	summary.AvgProtein = totalProtein / n
	return summary
}
