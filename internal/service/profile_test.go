package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateProfile(t *testing.T) {
	db := setupDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()
	user, _ := createUser(t, db, "alice")
	createUser(t, db, "bob")

	profile, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Sex:         ptr("female"),
		Age:         ptr(28),
		HeightCm:    ptr(165.0),
		WeightKg:    ptr(58.5),
		FitnessGoal: ptr("muscle_gain"),
		Bio:         ptr("lifting"),
	})
	require.NoError(t, err)
	assert.Equal(t, "female", profile.Sex)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 28, *profile.Age)
	assert.Equal(t, "muscle_gain", profile.FitnessGoal)

	stored, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 58.5, stored.WeightKg)
	assert.Equal(t, "lifting", stored.Bio)
	assert.Equal(t, "alice", stored.Username)

	_, err = svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Username: ptr("bob")})
	assert.ErrorIs(t, err, service.ErrConflict)

	_, err = svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{FitnessGoal: ptr("bulking")})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCalorieTarget(t *testing.T) {
	db := setupDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()
	user, _ := createUser(t, db, "alice")

	_, err := svc.CalorieTarget(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrIncompleteProfile)

	_, err = svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Sex:      ptr("male"),
		Age:      ptr(30),
		HeightCm: ptr(180.0),
		WeightKg: ptr(80.0),
	})
	require.NoError(t, err)

	target, err := svc.CalorieTarget(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1853.632, target.BMR, 1e-6)
	assert.Equal(t, 2780, target.DailyCalories)
	assert.Equal(t, "maintenance", target.FitnessGoal)
	assert.Equal(t, 1.5, target.ActivityMultiplier)
}

func TestCalorieTargetAcceptsAgeZero(t *testing.T) {
	db := setupDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()
	user, _ := createUser(t, db, "alice")

	_, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Sex:      ptr("male"),
		HeightCm: ptr(75.0),
		WeightKg: ptr(10.0),
	})
	require.NoError(t, err)
	_, err = svc.CalorieTarget(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrIncompleteProfile)

	profile, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Age: ptr(0)})
	require.NoError(t, err)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 0, *profile.Age)

	target, err := svc.CalorieTarget(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 582.257, target.BMR, 1e-6)
	assert.Equal(t, 873, target.DailyCalories)

	_, err = svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Age: ptr(-1)})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestUpdateProfileTrimsUsernameBeforeValidating(t *testing.T) {
	db := setupDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()
	user, _ := createUser(t, db, "alice")

	_, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Username: ptr("  ab  ")})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	profile, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Username: ptr("  alice2  ")})
	require.NoError(t, err)
	assert.Equal(t, "alice2", profile.Username)

	stored, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", stored.Username)
}
