package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

type ChallengeService struct {
	db     *gorm.DB
	points PointsAwarder
}

var _ IChallengeService = (*ChallengeService)(nil)

func NewChallengeService(db *gorm.DB, points PointsAwarder) *ChallengeService {
	return &ChallengeService{db: db, points: points}
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, creatorID uuid.UUID, req *types.ChallengeRequest) (*models.Challenge, error) {
	switch req.Metric {
	case models.MetricWorkouts, models.MetricMinutes, models.MetricCalories:
	default:
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, req.Metric)
	}
	if !req.EndsAt.After(req.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", ErrInvalidInput)
	}
	if req.TargetValue <= 0 {
		return nil, fmt.Errorf("%w: target_value must be positive", ErrInvalidInput)
	}

	challenge := &models.Challenge{
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		Metric:      req.Metric,
		TargetValue: req.TargetValue,
		StartsAt:    req.StartsAt.UTC(),
		EndsAt:      req.EndsAt.UTC(),
	}
	if err := s.db.WithContext(ctx).Create(challenge).Error; err != nil {
		return nil, err
	}
	return challenge, nil
}

// ListChallenges lists challenges by start date. activeOnly hides those that already ended.
func (s *ChallengeService) ListChallenges(ctx context.Context, activeOnly bool, opts types.ListOptions) ([]models.Challenge, int64, error) {
	opts = opts.Normalize()
	q := s.db.WithContext(ctx).Model(&models.Challenge{})
	if activeOnly {
		q = q.Where("ends_at >= ?", time.Now().UTC())
	}

	var challenges []models.Challenge
	total, err := page(q, opts, "starts_at DESC", &challenges)
	if err != nil {
		return nil, 0, err
	}
	return challenges, total, nil
}

func (s *ChallengeService) GetChallenge(ctx context.Context, id uuid.UUID) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.WithContext(ctx).First(&challenge, "id = ?", id).Error; err != nil {
		return nil, dbErr(err)
	}
	return &challenge, nil
}

func (s *ChallengeService) Join(ctx context.Context, challengeID, userID uuid.UUID) (*models.ChallengeParticipant, error) {
	challenge, err := s.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if time.Now().After(challenge.EndsAt) {
		return nil, fmt.Errorf("%w: challenge has ended", ErrInvalidInput)
	}

	participant := &models.ChallengeParticipant{ChallengeID: challengeID, UserID: userID}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ChallengeParticipant{}).
			Where("challenge_id = ? AND user_id = ?", challengeID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: already joined", ErrConflict)
		}
		// a concurrent join can still slip past the count and hit idx_challenge_user
		return dbErr(tx.Create(participant).Error)
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *ChallengeService) Leave(ctx context.Context, challengeID, userID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		Delete(&models.ChallengeParticipant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProgress records the participant's progress while the challenge is
// running. Reaching the target marks completion and awards points once.
func (s *ChallengeService) UpdateProgress(ctx context.Context, challengeID, userID uuid.UUID, progress float64) (*models.ChallengeParticipant, error) {
	if progress < 0 {
		return nil, fmt.Errorf("%w: progress must not be negative", ErrInvalidInput)
	}

	challenge, err := s.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if !challenge.Active(now) {
		return nil, fmt.Errorf("%w: challenge is not active", ErrInvalidInput)
	}

	var participant models.ChallengeParticipant
	if err := s.db.WithContext(ctx).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		First(&participant).Error; err != nil {
		return nil, dbErr(err)
	}

	justCompleted := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ChallengeParticipant{}).
			Where("id = ?", participant.ID).
			Update("progress", progress).Error; err != nil {
			return err
		}
		if progress < challenge.TargetValue {
			return nil
		}
		// only the request that flips completed_at earns the bonus
		result := tx.Model(&models.ChallengeParticipant{}).
			Where("id = ? AND completed_at IS NULL", participant.ID).
			Update("completed_at", now)
		if result.Error != nil {
			return result.Error
		}
		justCompleted = result.RowsAffected == 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).First(&participant, "id = ?", participant.ID).Error; err != nil {
		return nil, dbErr(err)
	}

	if justCompleted && s.points != nil {
		log.Printf("[ChallengeService] User %s completed challenge %s", userID, challengeID)
		if err := s.points.AwardPoints(ctx, userID, ChallengeCompletePoints); err != nil {
			log.Printf("[ChallengeService] Failed to award points to %s: %v", userID, err)
		}
	}
	return &participant, nil
}

// Standings ranks participants by progress, earliest finishers first on ties.
func (s *ChallengeService) Standings(ctx context.Context, challengeID uuid.UUID) ([]types.ChallengeStanding, error) {
	if _, err := s.GetChallenge(ctx, challengeID); err != nil {
		return nil, err
	}

	var participants []models.ChallengeParticipant
	if err := s.db.WithContext(ctx).
		Where("challenge_id = ?", challengeID).
		Order("progress DESC").Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(participants))
	for i, p := range participants {
		ids[i] = p.UserID
	}
	usernames, err := s.usernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	standings := make([]types.ChallengeStanding, len(participants))
	for i, p := range participants {
		standings[i] = types.ChallengeStanding{
			UserID:      p.UserID.String(),
			Username:    usernames[p.UserID],
			Progress:    p.Progress,
			Completed:   p.CompletedAt != nil,
			CompletedAt: p.CompletedAt,
		}
	}
	sortStandings(standings)
	return standings, nil
}

func (s *ChallengeService) usernames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var profiles []models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&profiles).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	for _, p := range profiles {
		out[p.UserID] = p.Username
	}
	return out, nil
}

// sortStandings orders by progress, earlier completions first on ties.
func sortStandings(standings []types.ChallengeStanding) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Progress != b.Progress {
			return a.Progress > b.Progress
		}
		if a.CompletedAt == nil {
			return false
		}
		return b.CompletedAt == nil || a.CompletedAt.Before(*b.CompletedAt)
	})
}
