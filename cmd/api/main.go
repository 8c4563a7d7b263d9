package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/database"
	"github.com/pageza/fittrack/backend/internal/server"
	"github.com/pageza/fittrack/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Starting FitTrack API (environment=%s)", config.GetEnvironment())

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	deps := server.Deps{DB: db}

	// Redis backs the leaderboard cache and rate limiting; both work without it.
	if redisClient, err := database.NewRedisClient(ctx, cfg); err != nil {
		log.Printf("[Redis] Unavailable, running without cache: %v", err)
	} else {
		deps.Redis = redisClient
		defer closeRedis(redisClient)
		if err := service.NewLeaderboardService(db, redisClient).Rebuild(ctx); err != nil {
			log.Printf("[Redis] Failed to rebuild leaderboard: %v", err)
		}
	}

	if cfg.S3Bucket != "" {
		s3, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Printf("[S3] Photo storage disabled: %v", err)
		} else {
			deps.Store = s3
		}
	} else {
		log.Println("[S3] No bucket configured, photo uploads disabled")
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("[Redis] Close failed: %v", err)
	}
}
