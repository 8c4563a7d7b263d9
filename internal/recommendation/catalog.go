package recommendation

import "github.com/pageza/fittrack/backend/internal/nutrition"

type food = nutrition.FoodItem

// catalog is read-only after package initialisation. TemplatesFor hands out
// copies so callers can never alter it.
var catalog = map[nutrition.FitnessGoal][]MealTemplate{
	nutrition.WeightLoss: {
		{
			MealType:     Breakfast,
			Name:         "Greek Yogurt Berry Bowl",
			Description:  "Protein-packed yogurt topped with fresh berries and chia seeds",
			CalorieShare: 0.25,
			FoodItems: []food{
				{Name: "Greek Yogurt (nonfat)", Quantity: 200, Unit: "g", Calories: 118, Protein: 20.4, Carbs: 7.2, Fat: 0.8},
				{Name: "Mixed Berries", Quantity: 100, Unit: "g", Calories: 57, Protein: 0.7, Carbs: 14, Fat: 0.3},
				{Name: "Chia Seeds", Quantity: 10, Unit: "g", Calories: 49, Protein: 1.7, Carbs: 4.2, Fat: 3.1},
			},
			Benefits:   []string{"High protein", "Rich in antioxidants", "Keeps you full longer"},
			Difficulty: Easy,
			PrepTime:   "5 mins",
			Tags:       []string{"high-protein", "low-calorie", "vegetarian"},
		},
		{
			MealType:     Lunch,
			Name:         "Grilled Chicken Salad",
			Description:  "Lean grilled chicken over mixed greens with a light olive oil dressing",
			CalorieShare: 0.35,
			FoodItems: []food{
				{Name: "Chicken Breast", Quantity: 150, Unit: "g", Calories: 248, Protein: 46.5, Carbs: 0, Fat: 5.4},
				{Name: "Mixed Greens", Quantity: 100, Unit: "g", Calories: 20, Protein: 2, Carbs: 3.6, Fat: 0.3},
				{Name: "Cherry Tomatoes", Quantity: 100, Unit: "g", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2},
				{Name: "Olive Oil", Quantity: 10, Unit: "ml", Calories: 88, Protein: 0, Carbs: 0, Fat: 10},
			},
			Benefits:   []string{"Lean protein", "High fiber", "Low carb"},
			Difficulty: Easy,
			PrepTime:   "15 mins",
			Tags:       []string{"high-protein", "low-carb", "gluten-free"},
		},
		{
			MealType:     Dinner,
			Name:         "Baked Salmon with Steamed Broccoli",
			Description:  "Oven-baked salmon fillet with broccoli and a side of quinoa",
			CalorieShare: 0.3,
			FoodItems: []food{
				{Name: "Salmon Fillet", Quantity: 150, Unit: "g", Calories: 312, Protein: 30.6, Carbs: 0, Fat: 20},
				{Name: "Broccoli", Quantity: 150, Unit: "g", Calories: 51, Protein: 4.2, Carbs: 10, Fat: 0.6},
				{Name: "Quinoa (cooked)", Quantity: 100, Unit: "g", Calories: 120, Protein: 4.4, Carbs: 21.3, Fat: 1.9},
			},
			Benefits:   []string{"Omega-3 fatty acids", "Complete protein", "Nutrient dense"},
			Difficulty: Medium,
			PrepTime:   "25 mins",
			Tags:       []string{"omega-3", "gluten-free", "heart-healthy"},
		},
		{
			MealType:     Snack,
			Name:         "Apple with Almond Butter",
			Description:  "Crisp apple slices with a measured serving of almond butter",
			CalorieShare: 0.1,
			FoodItems: []food{
				{Name: "Apple", Quantity: 1, Unit: "piece", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
				{Name: "Almond Butter", Quantity: 16, Unit: "g", Calories: 98, Protein: 3.4, Carbs: 3, Fat: 8.9},
			},
			Benefits:   []string{"Healthy fats", "Natural sweetness", "Portion controlled"},
			Difficulty: Easy,
			PrepTime:   "2 mins",
			Tags:       []string{"vegan", "quick", "low-calorie"},
		},
	},
	nutrition.WeightGain: {
		{
			MealType:     Breakfast,
			Name:         "Peanut Butter Banana Oatmeal",
			Description:  "Hearty oats cooked in whole milk with banana and peanut butter",
			CalorieShare: 0.25,
			FoodItems: []food{
				{Name: "Rolled Oats", Quantity: 80, Unit: "g", Calories: 303, Protein: 10.5, Carbs: 54, Fat: 5.3},
				{Name: "Whole Milk", Quantity: 250, Unit: "ml", Calories: 153, Protein: 8, Carbs: 12, Fat: 8},
				{Name: "Banana", Quantity: 1, Unit: "piece", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
				{Name: "Peanut Butter", Quantity: 32, Unit: "g", Calories: 188, Protein: 8, Carbs: 6, Fat: 16},
			},
			Benefits:   []string{"Calorie dense", "Sustained energy", "Good fats"},
			Difficulty: Easy,
			PrepTime:   "10 mins",
			Tags:       []string{"high-calorie", "vegetarian", "comfort-food"},
		},
		{
			MealType:     Lunch,
			Name:         "Beef and Rice Power Bowl",
			Description:  "Seasoned lean beef over white rice with avocado and black beans",
			CalorieShare: 0.3,
			FoodItems: []food{
				{Name: "Lean Ground Beef", Quantity: 150, Unit: "g", Calories: 332, Protein: 39, Carbs: 0, Fat: 19},
				{Name: "White Rice (cooked)", Quantity: 200, Unit: "g", Calories: 260, Protein: 5.4, Carbs: 57, Fat: 0.6},
				{Name: "Avocado", Quantity: 100, Unit: "g", Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7},
				{Name: "Black Beans", Quantity: 100, Unit: "g", Calories: 132, Protein: 8.9, Carbs: 23.7, Fat: 0.5},
			},
			Benefits:   []string{"High calorie", "Iron rich", "Balanced macros"},
			Difficulty: Medium,
			PrepTime:   "20 mins",
			Tags:       []string{"high-calorie", "high-protein", "gluten-free"},
		},
		{
			MealType:     Dinner,
			Name:         "Chicken Alfredo Pasta",
			Description:  "Pasta tossed in alfredo sauce with chicken thigh and parmesan",
			CalorieShare: 0.3,
			FoodItems: []food{
				{Name: "Pasta (cooked)", Quantity: 200, Unit: "g", Calories: 316, Protein: 11.6, Carbs: 61.8, Fat: 1.9},
				{Name: "Chicken Thigh", Quantity: 150, Unit: "g", Calories: 314, Protein: 37, Carbs: 0, Fat: 17},
				{Name: "Alfredo Sauce", Quantity: 60, Unit: "g", Calories: 120, Protein: 2, Carbs: 3, Fat: 11},
				{Name: "Parmesan", Quantity: 20, Unit: "g", Calories: 83, Protein: 7.2, Carbs: 0.6, Fat: 5.5},
			},
			Benefits:   []string{"Energy dense", "High protein", "Satisfying"},
			Difficulty: Medium,
			PrepTime:   "30 mins",
			Tags:       []string{"high-calorie", "comfort-food"},
		},
		{
			MealType:     Snack,
			Name:         "Trail Mix and Whole Milk",
			Description:  "A handful of nuts, seeds and dried fruit with a glass of milk",
			CalorieShare: 0.15,
			FoodItems: []food{
				{Name: "Trail Mix", Quantity: 60, Unit: "g", Calories: 277, Protein: 8.4, Carbs: 27, Fat: 17.6},
				{Name: "Whole Milk", Quantity: 250, Unit: "ml", Calories: 153, Protein: 8, Carbs: 12, Fat: 8},
			},
			Benefits:   []string{"Easy extra calories", "Healthy fats", "Portable"},
			Difficulty: Easy,
			PrepTime:   "1 min",
			Tags:       []string{"high-calorie", "quick", "vegetarian"},
		},
	},
	nutrition.MuscleGain: {
		{
			MealType:     Breakfast,
			Name:         "Egg White Omelette with Whole Grain Toast",
			Description:  "Fluffy egg white and whole egg omelette with spinach and toast",
			CalorieShare: 0.25,
			FoodItems: []food{
				{Name: "Egg Whites", Quantity: 200, Unit: "g", Calories: 104, Protein: 21.8, Carbs: 1.5, Fat: 0.4},
				{Name: "Whole Eggs", Quantity: 2, Unit: "piece", Calories: 143, Protein: 12.6, Carbs: 0.7, Fat: 9.5},
				{Name: "Spinach", Quantity: 50, Unit: "g", Calories: 12, Protein: 1.4, Carbs: 1.8, Fat: 0.2},
				{Name: "Whole Grain Toast", Quantity: 2, Unit: "piece", Calories: 160, Protein: 8, Carbs: 28, Fat: 2},
			},
			Benefits:   []string{"Muscle building protein", "Complex carbs", "Micronutrients"},
			Difficulty: Medium,
			PrepTime:   "15 mins",
			Tags:       []string{"high-protein", "vegetarian"},
		},
		{
			MealType:     Lunch,
			Name:         "Turkey and Quinoa Bowl",
			Description:  "Lean turkey breast with quinoa, roasted sweet potato and kale",
			CalorieShare: 0.3,
			FoodItems: []food{
				{Name: "Turkey Breast", Quantity: 150, Unit: "g", Calories: 203, Protein: 44, Carbs: 0, Fat: 2.2},
				{Name: "Quinoa (cooked)", Quantity: 150, Unit: "g", Calories: 180, Protein: 6.6, Carbs: 32, Fat: 2.9},
				{Name: "Sweet Potato", Quantity: 150, Unit: "g", Calories: 135, Protein: 3, Carbs: 31, Fat: 0.2},
				{Name: "Kale", Quantity: 50, Unit: "g", Calories: 25, Protein: 2.2, Carbs: 4.4, Fat: 0.5},
			},
			Benefits:   []string{"Lean protein", "Slow release carbs", "Recovery support"},
			Difficulty: Medium,
			PrepTime:   "25 mins",
			Tags:       []string{"high-protein", "gluten-free", "meal-prep"},
		},
		{
			MealType:     Dinner,
			Name:         "Lean Steak with Sweet Potato",
			Description:  "Seared sirloin with baked sweet potato and grilled asparagus",
			CalorieShare: 0.3,
			FoodItems: []food{
				{Name: "Sirloin Steak", Quantity: 200, Unit: "g", Calories: 366, Protein: 54, Carbs: 0, Fat: 15},
				{Name: "Sweet Potato", Quantity: 200, Unit: "g", Calories: 180, Protein: 4, Carbs: 41.4, Fat: 0.3},
				{Name: "Asparagus", Quantity: 100, Unit: "g", Calories: 20, Protein: 2.2, Carbs: 3.9, Fat: 0.1},
			},
			Benefits:   []string{"Creatine and iron", "High protein", "Glycogen replenishment"},
			Difficulty: Hard,
			PrepTime:   "35 mins",
			Tags:       []string{"high-protein", "gluten-free", "post-workout"},
		},
		{
			MealType:     Snack,
			Name:         "Protein Shake with Banana",
			Description:  "Whey protein blended with skim milk and a banana",
			CalorieShare: 0.15,
			FoodItems: []food{
				{Name: "Whey Protein", Quantity: 30, Unit: "g", Calories: 120, Protein: 24, Carbs: 3, Fat: 1.5},
				{Name: "Banana", Quantity: 1, Unit: "piece", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
				{Name: "Skim Milk", Quantity: 250, Unit: "ml", Calories: 86, Protein: 8.4, Carbs: 12.2, Fat: 0.2},
			},
			Benefits:   []string{"Fast absorbing protein", "Post-workout recovery", "Convenient"},
			Difficulty: Easy,
			PrepTime:   "3 mins",
			Tags:       []string{"high-protein", "quick", "post-workout"},
		},
	},
	nutrition.Maintenance: {
		{
			MealType:     Breakfast,
			Name:         "Avocado Toast with Poached Eggs",
			Description:  "Whole grain toast with smashed avocado and two poached eggs",
			CalorieShare: 0.25,
			FoodItems: []food{
				{Name: "Whole Grain Toast", Quantity: 2, Unit: "piece", Calories: 160, Protein: 8, Carbs: 28, Fat: 2},
				{Name: "Avocado", Quantity: 70, Unit: "g", Calories: 112, Protein: 1.4, Carbs: 6, Fat: 10.3},
				{Name: "Whole Eggs", Quantity: 2, Unit: "piece", Calories: 143, Protein: 12.6, Carbs: 0.7, Fat: 9.5},
			},
			Benefits:   []string{"Balanced macros", "Healthy fats", "Steady energy"},
			Difficulty: Easy,
			PrepTime:   "10 mins",
			Tags:       []string{"balanced", "vegetarian"},
		},
		{
			MealType:     Lunch,
			Name:         "Mediterranean Chickpea Wrap",
			Description:  "Whole wheat wrap filled with chickpeas, hummus, feta and cucumber",
			CalorieShare: 0.35,
			FoodItems: []food{
				{Name: "Whole Wheat Tortilla", Quantity: 1, Unit: "piece", Calories: 130, Protein: 4, Carbs: 22, Fat: 3.5},
				{Name: "Chickpeas", Quantity: 100, Unit: "g", Calories: 164, Protein: 8.9, Carbs: 27.4, Fat: 2.6},
				{Name: "Hummus", Quantity: 30, Unit: "g", Calories: 50, Protein: 2.4, Carbs: 4.3, Fat: 2.9},
				{Name: "Feta Cheese", Quantity: 30, Unit: "g", Calories: 80, Protein: 4.3, Carbs: 1.2, Fat: 6.4},
				{Name: "Cucumber", Quantity: 50, Unit: "g", Calories: 8, Protein: 0.3, Carbs: 1.8, Fat: 0.1},
			},
			Benefits:   []string{"Plant protein", "High fiber", "Mediterranean diet"},
			Difficulty: Easy,
			PrepTime:   "10 mins",
			Tags:       []string{"balanced", "vegetarian", "mediterranean"},
		},
		{
			MealType:     Dinner,
			Name:         "Chicken Stir-Fry with Brown Rice",
			Description:  "Chicken and vegetables stir-fried in soy and sesame over brown rice",
			CalorieShare: 0.3,
			FoodItems: []food{
				{Name: "Chicken Breast", Quantity: 150, Unit: "g", Calories: 248, Protein: 46.5, Carbs: 0, Fat: 5.4},
				{Name: "Brown Rice (cooked)", Quantity: 150, Unit: "g", Calories: 168, Protein: 3.9, Carbs: 35, Fat: 1.3},
				{Name: "Stir-Fry Vegetables", Quantity: 150, Unit: "g", Calories: 65, Protein: 3, Carbs: 13, Fat: 0.4},
				{Name: "Soy Sauce", Quantity: 15, Unit: "ml", Calories: 8, Protein: 1.3, Carbs: 0.8, Fat: 0.1},
				{Name: "Sesame Oil", Quantity: 5, Unit: "ml", Calories: 40, Protein: 0, Carbs: 0, Fat: 4.5},
			},
			Benefits:   []string{"Lean protein", "Whole grains", "Vegetable variety"},
			Difficulty: Medium,
			PrepTime:   "20 mins",
			Tags:       []string{"balanced", "high-protein", "dairy-free"},
		},
		{
			MealType:     Snack,
			Name:         "Hummus with Veggie Sticks",
			Description:  "Creamy hummus served with carrot and bell pepper sticks",
			CalorieShare: 0.1,
			FoodItems: []food{
				{Name: "Hummus", Quantity: 60, Unit: "g", Calories: 100, Protein: 4.8, Carbs: 8.6, Fat: 5.8},
				{Name: "Carrot Sticks", Quantity: 100, Unit: "g", Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2},
				{Name: "Bell Pepper", Quantity: 100, Unit: "g", Calories: 31, Protein: 1, Carbs: 6, Fat: 0.3},
			},
			Benefits:   []string{"Fiber rich", "Plant based", "Low calorie"},
			Difficulty: Easy,
			PrepTime:   "5 mins",
			Tags:       []string{"vegan", "quick", "balanced"},
		},
	},
}

// TemplatesFor returns copies of the templates for goal in catalog order.
// Unrecognised goals get the maintenance list.
func TemplatesFor(goal nutrition.FitnessGoal) []MealTemplate {
	templates, ok := catalog[goal]
	if !ok {
		templates = catalog[nutrition.Maintenance]
	}
	out := make([]MealTemplate, len(templates))
	for i, t := range templates {
		out[i] = t.clone()
	}
	return out
}
