package nutrition

// FoodItem is a single food entry with macros stated for its quantity.
type FoodItem struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit" binding:"max=20"`
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

// Nutrition holds aggregated macro totals.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Sum adds up the macros of every item.
func Sum(items []FoodItem) Nutrition {
	var n Nutrition
	for _, item := range items {
		n.Calories += item.Calories
		n.Protein += item.Protein
		n.Carbs += item.Carbs
		n.Fat += item.Fat
	}
	return n
}
