package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/api"
	"github.com/pageza/fittrack/backend/internal/database"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/recommendation"
	"github.com/pageza/fittrack/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// Deps are the stores the server is built on. Redis and Store are optional.
type Deps struct {
	DB    *gorm.DB
	Redis *redis.Client
	Store service.ObjectStore
}

// NewServices wires every service from cfg and deps.
func NewServices(cfg *config.Config, deps Deps) api.Services {
	auth := service.NewAuthService(deps.DB, cfg.JWTSecret, cfg.JWTTTL)
	profiles := service.NewProfileService(deps.DB)
	meals := service.NewMealService(deps.DB)
	leaderboard := service.NewLeaderboardService(deps.DB, deps.Redis)
	generator := recommendation.NewGenerator(recommendation.WithStrictScaling(cfg.RecommendationStrictScaling))

	return api.Services{
		Auth:           auth,
		Profile:        profiles,
		Workout:        service.NewWorkoutService(deps.DB, leaderboard),
		Meal:           meals,
		Progress:       service.NewProgressService(deps.DB, deps.Store),
		Challenge:      service.NewChallengeService(deps.DB, leaderboard),
		Forum:          service.NewForumService(deps.DB, leaderboard),
		Leaderboard:    leaderboard,
		Recommendation: service.NewRecommendationService(deps.DB, profiles, meals, generator, cfg.RecentMealWindow),
		Admin:          service.NewAdminService(deps.DB, leaderboard),
	}
}

// New creates a new server instance
func New(cfg *config.Config, deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}

	var limiter *middleware.RateLimiter
	if deps.Redis != nil {
		limiter = middleware.NewRecommendationRateLimiter(deps.Redis, cfg.RecommendationRateLimit)
	}

	api.SetupAPI(router, NewServices(cfg, deps), limiter, healthCheck(deps))

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func healthCheck(deps Deps) api.HealthFunc {
	return func(ctx context.Context) error {
		if err := database.HealthCheck(ctx, deps.DB); err != nil {
			return err
		}
		if deps.Redis != nil {
			return deps.Redis.Ping(ctx).Err()
		}
		return nil
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
