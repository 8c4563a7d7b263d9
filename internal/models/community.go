package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Challenge metrics.
const (
	MetricWorkouts = "workouts"
	MetricMinutes  = "minutes"
	MetricCalories = "calories"
)

type Challenge struct {
	Base
	CreatorID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"creator_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Metric      string    `gorm:"size:20;not null" json:"metric"`
	TargetValue float64   `gorm:"not null" json:"target_value"`
	StartsAt    time.Time `gorm:"not null" json:"starts_at"`
	EndsAt      time.Time `gorm:"not null" json:"ends_at"`
}

// Active reports whether t falls inside the challenge window.
func (c *Challenge) Active(t time.Time) bool {
	return !t.Before(c.StartsAt) && !t.After(c.EndsAt)
}

type ChallengeParticipant struct {
	Base
	ChallengeID uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_challenge_user" json:"challenge_id"`
	UserID      uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_challenge_user" json:"user_id"`
	Progress    float64    `gorm:"not null;default:0" json:"progress"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ForumPost struct {
	Base
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	AuthorID  uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"author_id"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Category  string         `gorm:"size:50;index" json:"category"`
	LikeCount int            `gorm:"not null;default:0" json:"like_count"`
	Comments  []ForumComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

type ForumComment struct {
	Base
	PostID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"post_id"`
	AuthorID uuid.UUID `gorm:"type:varchar(36);not null" json:"author_id"`
	Body     string    `gorm:"type:text;not null" json:"body"`
}

type PostLike struct {
	Base
	PostID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_post_user" json:"user_id"`
}
