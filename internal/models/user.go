package models

import (
	"github.com/google/uuid"

	"github.com/pageza/fittrack/backend/internal/nutrition"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Base
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`
}

// UserProfile holds the body metrics and goal the calculators read, plus the
// user's leaderboard points.
type UserProfile struct {
	Base
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Username      string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Bio           string    `gorm:"type:text" json:"bio"`
	Sex           string    `gorm:"size:10" json:"sex"`
	Age           *int      `json:"age"`
	HeightCm      float64   `json:"height_cm"`
	WeightKg      float64   `json:"weight_kg"`
	FitnessGoal   string    `gorm:"size:20;not null;default:'maintenance'" json:"fitness_goal"`
	ActivityLevel string    `gorm:"size:20" json:"activity_level"`
	Points        int64     `gorm:"not null;default:0;index" json:"points"`
}

// Complete reports whether the calculators have everything they need. A nil
// Age means the user never set one; zero is a valid age.
func (p *UserProfile) Complete() bool {
	return p.Age != nil && p.NutritionProfile().Complete()
}

// NutritionProfile converts the stored profile for the calculators.
func (p *UserProfile) NutritionProfile() nutrition.Profile {
	var age int
	if p.Age != nil {
		age = *p.Age
	}
	return nutrition.Profile{
		Sex:         nutrition.Sex(p.Sex),
		Age:         age,
		HeightCm:    p.HeightCm,
		WeightKg:    p.WeightKg,
		FitnessGoal: nutrition.ParseFitnessGoal(p.FitnessGoal),
	}
}
