package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type ProgressService struct {
	db    *gorm.DB
	store ObjectStore
}

var _ IProgressService = (*ProgressService)(nil)

// NewProgressService creates the service. store may be nil, in which case
// photo uploads report ErrUnavailable.
func NewProgressService(db *gorm.DB, store ObjectStore) *ProgressService {
	return &ProgressService{db: db, store: store}
}

func (s *ProgressService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.ProgressRequest) (*models.ProgressEntry, error) {
	entry := &models.ProgressEntry{
		UserID:       userID,
		WeightKg:     req.WeightKg,
		BodyFatPct:   req.BodyFatPct,
		Measurements: models.Measurements(req.Measurements),
		Notes:        req.Notes,
		RecordedAt:   time.Now().UTC(),
	}
	if req.RecordedAt != nil {
		entry.RecordedAt = req.RecordedAt.UTC()
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ProgressService) ListEntries(ctx context.Context, userID uuid.UUID, opts types.ListOptions) ([]models.ProgressEntry, int64, error) {
	opts = opts.Normalize()
	q := window(s.db.WithContext(ctx).Model(&models.ProgressEntry{}).Where("user_id = ?", userID), "recorded_at", opts)

	var entries []models.ProgressEntry
	total, err := page(q, opts, "recorded_at DESC", &entries)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *ProgressService) getEntry(ctx context.Context, userID, id uuid.UUID) (*models.ProgressEntry, error) {
	var entry models.ProgressEntry
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, dbErr(err)
	}
	return &entry, nil
}

// DeleteEntry removes the entry and, best effort, its photo.
func (s *ProgressService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	entry, err := s.getEntry(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(entry).Error; err != nil {
		return err
	}
	s.removePhoto(ctx, entry.PhotoKey)
	return nil
}

func (s *ProgressService) removePhoto(ctx context.Context, key string) {
	if key == "" || s.store == nil {
		return
	}
	if err := s.store.DeleteObject(ctx, key); err != nil {
		log.Printf("[ProgressService] Failed to delete photo %s: %v", key, err)
	}
}

// Summary compares the user's earliest and latest entries.
func (s *ProgressService) Summary(ctx context.Context, userID uuid.UUID) (*types.ProgressSummary, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ProgressEntry{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}

	summary := &types.ProgressSummary{EntryCount: int(count)}
	if count == 0 {
		return summary, nil
	}

	var first, latest models.ProgressEntry
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("recorded_at ASC").First(&first).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("recorded_at DESC").First(&latest).Error; err != nil {
		return nil, err
	}

	summary.First = &first
	summary.Latest = &latest
	summary.WeightChangeKg = latest.WeightKg - first.WeightKg
	return summary, nil
}

// UploadPhoto stores an image for the entry under
// progress/<user>/<entry>/<uuid>.<ext> and returns a presigned URL for it.
func (s *ProgressService) UploadPhoto(ctx context.Context, userID, entryID uuid.UUID, filename, contentType string, body io.Reader) (*types.PhotoUploadResponse, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: photo storage is not configured", ErrUnavailable)
	}

	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	ext, ok := photoExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", ErrInvalidInput, contentType)
	}
	if contentType == "image/jpeg" && strings.EqualFold(path.Ext(filename), ".jpeg") {
		ext = ".jpeg"
	}

	entry, err := s.getEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("progress/%s/%s/%s%s", userID, entryID, uuid.New(), ext)
	if err := s.store.PutObject(ctx, key, body, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	previous := entry.PhotoKey
	if err := s.db.WithContext(ctx).Model(entry).Update("photo_key", key).Error; err != nil {
		s.removePhoto(ctx, key)
		return nil, err
	}
	s.removePhoto(ctx, previous)

	url, err := s.store.GeneratePresignedURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to presign photo URL: %w", err)
	}

	log.Printf("[ProgressService] Stored photo %s", key)
	return &types.PhotoUploadResponse{Key: key, URL: url}, nil
}
