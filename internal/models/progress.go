package models

import (
	"time"

	"github.com/google/uuid"
)

type ProgressEntry struct {
	Base
	UserID       uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RecordedAt   time.Time    `gorm:"not null;index" json:"recorded_at"`
	WeightKg     float64      `json:"weight_kg"`
	BodyFatPct   *float64     `json:"body_fat_pct,omitempty"`
	Measurements Measurements `gorm:"type:jsonb;not null;default:'{}'" json:"measurements"`
	Notes        string       `gorm:"type:text" json:"notes"`
	PhotoKey     string       `gorm:"size:512" json:"photo_key,omitempty"`
}

// TableName returns the table name for the ProgressEntry model
func (ProgressEntry) TableName() string {
	return "progress_entries"
}
