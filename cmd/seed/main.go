package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/database"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

const starterChallenge = "30 Day Kickstart"

func main() {
	password := flag.String("password", "testpassword123", "Password for every seeded user")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	profiles := service.NewProfileService(db)
	admin := service.NewAdminService(db, nil)

	demoUsers := []struct {
		email    string
		username string
		role     string
		profile  types.UpdateProfileRequest
	}{
		{"admin@example.com", "admin", models.RoleAdmin, types.UpdateProfileRequest{}},
		{"john.doe@example.com", "johndoe", models.RoleUser, profileOf("male", 34, 182, 88, "weight_loss")},
		{"jane.smith@example.com", "janesmith", models.RoleUser, profileOf("female", 28, 165, 58, "muscle_gain")},
		{"sam.lee@example.com", "samlee", models.RoleUser, profileOf("male", 41, 175, 74, "maintenance")},
	}

	var creator *models.User
	for _, u := range demoUsers {
		user, _, err := auth.Register(ctx, &types.RegisterRequest{Email: u.email, Password: *password, Username: u.username})
		if errors.Is(err, service.ErrConflict) {
			log.Printf("User %s already exists, skipping", u.email)
			if creator == nil && u.role == models.RoleAdmin {
				creator = existingUser(db, u.email)
			}
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		}

		if u.role != models.RoleUser {
			if user, err = admin.SetRole(ctx, user.ID, u.role); err != nil {
				log.Fatalf("Failed to set role for %s: %v", u.email, err)
			}
		}
		if u.profile.Sex != nil {
			if _, err := profiles.UpdateProfile(ctx, user.ID, &u.profile); err != nil {
				log.Fatalf("Failed to set profile for %s: %v", u.email, err)
			}
		}
		if creator == nil && u.role == models.RoleAdmin {
			creator = user
		}
		log.Printf("Created user %s (%s)", u.email, u.role)
	}

	if creator == nil {
		log.Fatal("No admin user available to own the starter challenge")
	}
	seedChallenge(ctx, db, creator)
	log.Println("Seeding complete")
}

func profileOf(sex string, age int, heightCm, weightKg float64, goal string) types.UpdateProfileRequest {
	return types.UpdateProfileRequest{
		Sex:         &sex,
		Age:         &age,
		HeightCm:    &heightCm,
		WeightKg:    &weightKg,
		FitnessGoal: &goal,
	}
}

func existingUser(db *gorm.DB, email string) *models.User {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("Failed to load user %s: %v", email, err)
	}
	return &user
}

func seedChallenge(ctx context.Context, db *gorm.DB, creator *models.User) {
	var count int64
	if err := db.Model(&models.Challenge{}).Where("title = ?", starterChallenge).Count(&count).Error; err != nil {
		log.Fatalf("Failed to check challenges: %v", err)
	}
	if count > 0 {
		log.Printf("Challenge %q already exists, skipping", starterChallenge)
		return
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	challenges := service.NewChallengeService(db, nil)
	if _, err := challenges.CreateChallenge(ctx, creator.ID, &types.ChallengeRequest{
		Title:       starterChallenge,
		Description: "Log 20 workouts in the next 30 days.",
		Metric:      models.MetricWorkouts,
		TargetValue: 20,
		StartsAt:    start,
		EndsAt:      start.AddDate(0, 0, 30),
	}); err != nil {
		log.Fatalf("Failed to create challenge: %v", err)
	}
	log.Printf("Created challenge %q", starterChallenge)
}
