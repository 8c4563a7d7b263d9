package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// Points awarded per activity.
const (
	WorkoutPoints           int64 = 10
	ForumPostPoints         int64 = 2
	ChallengeCompletePoints int64 = 50
)

// LeaderboardKey is the Redis sorted set mirroring UserProfile.Points.
const LeaderboardKey = "leaderboard:points"

// LeaderboardService keeps user points in the database and mirrors them into
// a Redis sorted set when a client is configured.
type LeaderboardService struct {
	db    *gorm.DB
	redis *redis.Client
}

var _ ILeaderboardService = (*LeaderboardService)(nil)

// NewLeaderboardService creates a leaderboard. redisClient may be nil.
func NewLeaderboardService(db *gorm.DB, redisClient *redis.Client) *LeaderboardService {
	return &LeaderboardService{db: db, redis: redisClient}
}

// AwardPoints adds points to the user's total.
func (s *LeaderboardService) AwardPoints(ctx context.Context, userID uuid.UUID, points int64) error {
	result := s.db.WithContext(ctx).Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", points))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	if s.redis != nil {
		if err := s.redis.ZIncrBy(ctx, LeaderboardKey, float64(points), userID.String()).Err(); err != nil {
			log.Printf("[LeaderboardService] Warning: failed to mirror points for %s: %v", userID, err)
		}
	}
	return nil
}

// Top returns the highest scoring users, best first.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]types.LeaderboardEntry, error) {
	if limit < 1 {
		limit = types.DefaultPageLimit
	}
	if limit > types.MaxPageLimit {
		limit = types.MaxPageLimit
	}

	if s.redis != nil {
		entries, err := s.topFromRedis(ctx, limit)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
		if err != nil {
			log.Printf("[LeaderboardService] Warning: redis read failed, using database: %v", err)
		}
	}
	return s.topFromDB(ctx, limit)
}

func (s *LeaderboardService) topFromRedis(ctx context.Context, limit int) ([]types.LeaderboardEntry, error) {
	scores, err := s.redis.ZRevRangeWithScores(ctx, LeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(scores))
	for _, z := range scores {
		if member, ok := z.Member.(string); ok {
			ids = append(ids, member)
		}
	}

	var profiles []models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	usernames := make(map[string]string, len(profiles))
	for _, p := range profiles {
		usernames[p.UserID.String()] = p.Username
	}

	entries := make([]types.LeaderboardEntry, 0, len(scores))
	for _, z := range scores {
		member, _ := z.Member.(string)
		username, ok := usernames[member]
		if !ok {
			continue
		}
		entries = append(entries, types.LeaderboardEntry{
			Rank:     len(entries) + 1,
			UserID:   member,
			Username: username,
			Points:   int64(z.Score),
		})
	}
	return entries, nil
}

func (s *LeaderboardService) topFromDB(ctx context.Context, limit int) ([]types.LeaderboardEntry, error) {
	var profiles []models.UserProfile
	if err := s.db.WithContext(ctx).
		Order("points DESC").Order("username ASC").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	entries := make([]types.LeaderboardEntry, len(profiles))
	for i, p := range profiles {
		entries[i] = types.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   p.UserID.String(),
			Username: p.Username,
			Points:   p.Points,
		}
	}
	return entries, nil
}

// Rebuild replaces the Redis sorted set with the totals stored in the database.
func (s *LeaderboardService) Rebuild(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}

	var profiles []models.UserProfile
	if err := s.db.WithContext(ctx).Where("points > 0").Find(&profiles).Error; err != nil {
		return err
	}

	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, LeaderboardKey)
	for _, p := range profiles {
		pipe.ZAdd(ctx, LeaderboardKey, redis.Z{Score: float64(p.Points), Member: p.UserID.String()})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}
	log.Printf("[LeaderboardService] Rebuilt leaderboard with %d users", len(profiles))
	return nil
}

// Remove drops a user from the Redis leaderboard.
func (s *LeaderboardService) Remove(ctx context.Context, userID uuid.UUID) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.ZRem(ctx, LeaderboardKey, userID.String()).Err()
}
