package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

type WorkoutService struct {
	db     *gorm.DB
	points PointsAwarder
}

var _ IWorkoutService = (*WorkoutService)(nil)

func NewWorkoutService(db *gorm.DB, points PointsAwarder) *WorkoutService {
	return &WorkoutService{db: db, points: points}
}

func applyWorkout(w *models.Workout, req *types.WorkoutRequest) {
	w.Type = req.Type
	w.Name = req.Name
	w.DurationMinutes = req.DurationMinutes
	w.CaloriesBurned = req.CaloriesBurned
	w.Exercises = models.Exercises(req.Exercises)
	w.Notes = req.Notes
	if req.PerformedAt != nil {
		w.PerformedAt = req.PerformedAt.UTC()
	} else if w.PerformedAt.IsZero() {
		w.PerformedAt = time.Now().UTC()
	}
}

// CreateWorkout logs a workout and credits the user with WorkoutPoints.
func (s *WorkoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, req *types.WorkoutRequest) (*models.Workout, error) {
	workout := &models.Workout{UserID: userID}
	applyWorkout(workout, req)

	if err := s.db.WithContext(ctx).Create(workout).Error; err != nil {
		return nil, err
	}

	if s.points != nil {
		if err := s.points.AwardPoints(ctx, userID, WorkoutPoints); err != nil {
			log.Printf("[WorkoutService] Failed to award points to %s: %v", userID, err)
		}
	}
	return workout, nil
}

func (s *WorkoutService) GetWorkout(ctx context.Context, userID, id uuid.UUID) (*models.Workout, error) {
	var workout models.Workout
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&workout).Error; err != nil {
		return nil, dbErr(err)
	}
	return &workout, nil
}

// ListWorkouts returns a page of the user's workouts, most recent first.
func (s *WorkoutService) ListWorkouts(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.Workout, int64, error) {
	opts = opts.Normalize()
	q := window(s.db.WithContext(ctx).Model(&models.Workout{}).Where("user_id = ?", userID), "performed_at", opts)

	var workouts []models.Workout
	total, err := page(q, opts, "performed_at DESC", &workouts)
	if err != nil {
		return nil, 0, err
	}
	return workouts, total, nil
}

func (s *WorkoutService) UpdateWorkout(ctx context.Context, userID, id uuid.UUID, req *types.WorkoutRequest) (*models.Workout, error) {
	workout, err := s.GetWorkout(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	applyWorkout(workout, req)

	if err := s.db.WithContext(ctx).Save(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Workout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates the user's workouts inside the options' date range. Paging is ignored.
func (s *WorkoutService) Stats(ctx context.Context, userID uuid.UUID, opts types.ListOptions) (*types.WorkoutStats, error) {
	q := window(s.db.WithContext(ctx).Where("user_id = ?", userID), "performed_at", opts)

	var workouts []models.Workout
	if err := q.Select("type", "duration_minutes", "calories_burned").Find(&workouts).Error; err != nil {
		return nil, err
	}

	stats := &types.WorkoutStats{WorkoutsByType: map[string]int{}}
	for _, w := range workouts {
		stats.Count++
		stats.TotalMinutes += w.DurationMinutes
		stats.TotalCalories += w.CaloriesBurned
		stats.WorkoutsByType[w.Type]++
	}
	return stats, nil
}
