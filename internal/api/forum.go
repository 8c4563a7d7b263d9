package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

type ForumHandler struct {
	forumService service.IForumService
}

func NewForumHandler(forumService service.IForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/forum/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/:id", h.GetPost)
		posts.DELETE("/:id", h.DeletePost)
		posts.POST("/:id/comments", h.AddComment)
		posts.POST("/:id/like", h.ToggleLike)
	}
}

func (h *ForumHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ForumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.forumService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *ForumHandler) ListPosts(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, total, err := h.forumService.ListPosts(c.Request.Context(), c.Query("category"), opts)
	if err != nil {
		respondError(c, err, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, listResponse("posts", posts, opts, total))
}

func (h *ForumHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.forumService.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost lets authors remove their own posts and admins remove any.
func (h *ForumHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	isAdmin := c.GetString("role") == models.RoleAdmin
	if err := h.forumService.DeletePost(c.Request.Context(), id, userID, isAdmin); err != nil {
		respondError(c, err, "failed to delete post")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ForumHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.ForumCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comment, err := h.forumService.AddComment(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondError(c, err, "failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *ForumHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.forumService.ToggleLike(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "failed to like post")
		return
	}
	c.JSON(http.StatusOK, resp)
}
