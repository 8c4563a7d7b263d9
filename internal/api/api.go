package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
)

// Services bundles everything the HTTP layer talks to.
type Services struct {
	Auth           service.IAuthService
	Profile        service.IProfileService
	Workout        service.IWorkoutService
	Meal           service.IMealService
	Progress       service.IProgressService
	Challenge      service.IChallengeService
	Forum          service.IForumService
	Leaderboard    service.ILeaderboardService
	Recommendation service.IRecommendationService
	Admin          service.IAdminService
}

// HealthFunc reports whether the backing stores are reachable.
type HealthFunc func(ctx context.Context) error

// SetupAPI mounts /health and every /api/v1 route on router. rateLimiter may
// be nil.
func SetupAPI(router *gin.Engine, svc Services, rateLimiter *middleware.RateLimiter, health HealthFunc) {
	router.GET("/health", healthHandler(health))

	v1 := router.Group("/api/v1")
	NewAuthHandler(svc.Auth).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(svc.Auth))
	{
		NewProfileHandler(svc.Profile, svc.Auth).RegisterRoutes(protected)
		NewWorkoutHandler(svc.Workout).RegisterRoutes(protected)
		NewMealHandler(svc.Meal).RegisterRoutes(protected)
		NewProgressHandler(svc.Progress).RegisterRoutes(protected)
		NewChallengeHandler(svc.Challenge).RegisterRoutes(protected)
		NewForumHandler(svc.Forum).RegisterRoutes(protected)
		NewLeaderboardHandler(svc.Leaderboard).RegisterRoutes(protected)
		NewRecommendationHandler(svc.Recommendation, rateLimiter).RegisterRoutes(protected)
		NewAdminHandler(svc.Admin).RegisterRoutes(protected)
	}
}

func healthHandler(check HealthFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				log.Printf("[Health] check failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
