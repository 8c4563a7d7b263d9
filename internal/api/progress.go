package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// maxPhotoSize caps progress photo uploads at 10 MiB.
const maxPhotoSize = 10 << 20

type ProgressHandler struct {
	progressService service.IProgressService
}

func NewProgressHandler(progressService service.IProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progress := router.Group("/progress")
	{
		progress.GET("", h.ListEntries)
		progress.POST("", h.CreateEntry)
		progress.GET("/summary", h.Summary)
		progress.DELETE("/:id", h.DeleteEntry)
		progress.POST("/:id/photo", h.UploadPhoto)
	}
}

func (h *ProgressHandler) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	entry, err := h.progressService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to record progress")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *ProgressHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, total, err := h.progressService.ListEntries(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err, "failed to list progress")
		return
	}
	c.JSON(http.StatusOK, listResponse("entries", entries, opts, total))
}

func (h *ProgressHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.progressService.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "failed to delete progress entry")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProgressHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.progressService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to summarise progress")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UploadPhoto attaches the multipart "photo" file to a progress entry.
func (h *ProgressHandler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize+1<<20)
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if file.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds 10MB"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	defer src.Close()

	resp, err := h.progressService.UploadPhoto(c.Request.Context(), userID, entryID, file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		respondError(c, err, "failed to upload photo")
		return
	}
	c.JSON(http.StatusOK, resp)
}
