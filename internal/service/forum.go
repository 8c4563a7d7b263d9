package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

type ForumService struct {
	db     *gorm.DB
	points PointsAwarder
}

var _ IForumService = (*ForumService)(nil)

func NewForumService(db *gorm.DB, points PointsAwarder) *ForumService {
	return &ForumService{db: db, points: points}
}

func (s *ForumService) CreatePost(ctx context.Context, authorID uuid.UUID, req *types.ForumPostRequest) (*models.ForumPost, error) {
	post := &models.ForumPost{
		AuthorID: authorID,
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		Category: strings.ToLower(strings.TrimSpace(req.Category)),
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}

	if s.points != nil {
		if err := s.points.AwardPoints(ctx, authorID, ForumPostPoints); err != nil {
			log.Printf("[ForumService] Failed to award points to %s: %v", authorID, err)
		}
	}
	return post, nil
}

// ListPosts returns posts newest first, optionally limited to one category.
func (s *ForumService) ListPosts(ctx context.Context, category string, opts types.ListOptions) ([]models.ForumPost, int64, error) {
	opts = opts.Normalize()
	q := s.db.WithContext(ctx).Model(&models.ForumPost{})
	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		q = q.Where("category = ?", category)
	}

	var posts []models.ForumPost
	total, err := page(q, opts, "created_at DESC", &posts)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetPost loads a post with its comments in posting order.
func (s *ForumService) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	var post models.ForumPost
	err := s.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, dbErr(err)
	}
	return &post, nil
}

// DeletePost removes a post with its comments and likes. Only the author or
// an admin may delete.
func (s *ForumService) DeletePost(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error {
	var post models.ForumPost
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return dbErr(err)
	}
	if post.AuthorID != userID && !isAdmin {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.ForumComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func (s *ForumService) AddComment(ctx context.Context, postID, authorID uuid.UUID, req *types.ForumCommentRequest) (*models.ForumComment, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ForumPost{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	comment := &models.ForumComment{PostID: postID, AuthorID: authorID, Body: req.Body}
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleLike likes the post, or removes the like if the user already gave one.
func (s *ForumService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*types.LikeResponse, error) {
	resp := &types.LikeResponse{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.ForumPost
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			return dbErr(err)
		}

		var like models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&post).UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.PostLike{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&post).UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			resp.Liked = true
		default:
			return err
		}

		return tx.Model(&models.ForumPost{}).Where("id = ?", postID).Select("like_count").Scan(&resp.LikeCount).Error
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
