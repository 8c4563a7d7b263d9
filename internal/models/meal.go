package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meal struct {
	Base
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	MealType      string         `gorm:"size:20;not null" json:"meal_type"`
	Name          string         `gorm:"size:255" json:"name"`
	EatenAt       time.Time      `gorm:"not null;index" json:"eaten_at"`
	FoodItems     FoodItems      `gorm:"type:jsonb;not null;default:'[]'" json:"food_items"`
	TotalCalories float64        `json:"total_calories"`
	TotalProtein  float64        `json:"total_protein"`
	TotalCarbs    float64        `json:"total_carbs"`
	TotalFat      float64        `json:"total_fat"`
	Notes         string         `gorm:"type:text" json:"notes"`
}

// MealRating is a user's score for a recommended meal.
type MealRating struct {
	Base
	UserID             uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RecommendationName string    `gorm:"size:255;not null" json:"recommendation_name"`
	MealType           string    `gorm:"size:20;not null" json:"meal_type"`
	Score              int       `gorm:"not null" json:"score"`
	Comment            string    `gorm:"type:text" json:"comment"`
}
