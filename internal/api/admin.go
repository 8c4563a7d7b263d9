package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/role", h.SetRole)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, total, err := h.adminService.ListUsers(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, listResponse("users", users, opts, total))
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.adminService.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		respondError(c, err, "failed to update role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user, nil)})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		respondError(c, err, "failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}
