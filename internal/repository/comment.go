package repository

import (
	"context"

	"parlor/internal/models"
	"parlor/internal/validation"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment with a server-assigned creation timestamp.
// Content is escaped here, once, before the row is written. A reference to a
// nonexistent post or user surfaces as NOT_FOUND from the FK constraint.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.Content = validation.Sanitize(comment.Content)

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("Post", comment.PostID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// ListByPost returns the post's comments joined with author identity,
// newest first, deduplicated.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Distinct().
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
