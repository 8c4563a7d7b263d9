package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, profile, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to register user")
		return
	}
	h.respondWithToken(c, http.StatusCreated, user, profile)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, profile, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "failed to log in")
		return
	}
	h.respondWithToken(c, http.StatusOK, user, profile)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User, profile *models.UserProfile) {
	token, err := h.authService.GenerateToken(user, profile)
	if err != nil {
		respondError(c, err, "failed to generate token")
		return
	}
	c.JSON(status, types.AuthResponse{
		Token: token,
		User:  userResponse(user, profile),
	})
}

func userResponse(user *models.User, profile *models.UserProfile) *types.UserResponse {
	resp := &types.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if profile != nil {
		resp.Username = profile.Username
		resp.Points = profile.Points
		resp.Profile = profile
	}
	return resp
}
