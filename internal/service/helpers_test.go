package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/testhelpers"
	"github.com/pageza/fittrack/backend/internal/types"
)

const testPassword = "password123"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testhelpers.SetupSQLiteDB(t)
}

func createUser(t *testing.T, db *gorm.DB, username string) (*models.User, *models.UserProfile) {
	t.Helper()
	auth := service.NewAuthService(db, "test-secret", time.Hour)
	user, profile, err := auth.Register(context.Background(), &types.RegisterRequest{
		Email:    username + "@example.com",
		Password: testPassword,
		Username: username,
	})
	require.NoError(t, err)
	return user, profile
}

func points(t *testing.T, db *gorm.DB, user *models.User) int64 {
	t.Helper()
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	return profile.Points
}

func day(d, hour int) time.Time {
	return time.Date(2024, time.March, d, hour, 0, 0, 0, time.UTC)
}
