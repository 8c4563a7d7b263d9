package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// LeaderboardRemover drops a deleted user from the leaderboard cache.
type LeaderboardRemover interface {
	Remove(ctx context.Context, userID uuid.UUID) error
}

type AdminService struct {
	db          *gorm.DB
	leaderboard LeaderboardRemover
}

var _ IAdminService = (*AdminService)(nil)

func NewAdminService(db *gorm.DB, leaderboard LeaderboardRemover) *AdminService {
	return &AdminService{db: db, leaderboard: leaderboard}
}

func (s *AdminService) ListUsers(ctx context.Context, opts types.ListOptions) ([]types.UserResponse, int64, error) {
	opts = opts.Normalize()

	var users []models.User
	total, err := page(s.db.WithContext(ctx).Model(&models.User{}), opts, "created_at ASC", &users)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	var profiles []models.UserProfile
	if len(ids) > 0 {
		if err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
			return nil, 0, err
		}
	}
	byUser := make(map[uuid.UUID]models.UserProfile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}

	out := make([]types.UserResponse, len(users))
	for i, u := range users {
		p := byUser[u.ID]
		out[i] = types.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			Username:  p.Username,
			Points:    p.Points,
			CreatedAt: u.CreatedAt,
		}
	}
	return out, total, nil
}

func (s *AdminService) SetRole(ctx context.Context, userID uuid.UUID, role string) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, dbErr(err)
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	log.Printf("[AdminService] Set role of %s to %s", userID, role)
	return &user, nil
}

// DeleteUser removes an account and everything it owns. Admins cannot delete
// themselves.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return fmt.Errorf("%w: cannot delete your own account", ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return dbErr(err)
		}

		postIDs := tx.Unscoped().Model(&models.ForumPost{}).Select("id").Where("author_id = ?", userID)
		challengeIDs := tx.Model(&models.Challenge{}).Select("id").Where("creator_id = ?", userID)

		// Likes on liked posts keep their counters in step.
		var liked []uuid.UUID
		if err := tx.Model(&models.PostLike{}).Where("user_id = ?", userID).Pluck("post_id", &liked).Error; err != nil {
			return err
		}
		if len(liked) > 0 {
			if err := tx.Unscoped().Model(&models.ForumPost{}).Where("id IN ?", liked).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
		}

		deletes := []struct {
			model interface{}
			query string
			args  []interface{}
		}{
			{&models.PostLike{}, "user_id = ? OR post_id IN (?)", []interface{}{userID, postIDs}},
			{&models.ForumComment{}, "author_id = ? OR post_id IN (?)", []interface{}{userID, postIDs}},
			{&models.ForumPost{}, "author_id = ?", []interface{}{userID}},
			{&models.ChallengeParticipant{}, "user_id = ? OR challenge_id IN (?)", []interface{}{userID, challengeIDs}},
			{&models.Challenge{}, "creator_id = ?", []interface{}{userID}},
			{&models.MealRating{}, "user_id = ?", []interface{}{userID}},
			{&models.Meal{}, "user_id = ?", []interface{}{userID}},
			{&models.Workout{}, "user_id = ?", []interface{}{userID}},
			{&models.ProgressEntry{}, "user_id = ?", []interface{}{userID}},
			{&models.UserProfile{}, "user_id = ?", []interface{}{userID}},
		}
		for _, d := range deletes {
			if err := tx.Unscoped().Where(d.query, d.args...).Delete(d.model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return err
	}

	if s.leaderboard != nil {
		if err := s.leaderboard.Remove(ctx, userID); err != nil {
			log.Printf("[AdminService] Failed to remove %s from leaderboard: %v", userID, err)
		}
	}
	log.Printf("[AdminService] Deleted user %s", userID)
	return nil
}
