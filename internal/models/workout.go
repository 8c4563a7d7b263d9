package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workout struct {
	Base
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	UserID          uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Type            string         `gorm:"size:30;not null" json:"type"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	DurationMinutes int            `gorm:"not null" json:"duration_minutes"`
	CaloriesBurned  float64        `json:"calories_burned"`
	PerformedAt     time.Time      `gorm:"not null;index" json:"performed_at"`
	Exercises       Exercises      `gorm:"type:jsonb;not null;default:'[]'" json:"exercises"`
	Notes           string         `gorm:"type:text" json:"notes"`
}
