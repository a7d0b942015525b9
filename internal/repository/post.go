package repository

import (
	"context"
	"errors"

	"parlor/internal/models"
	"parlor/internal/validation"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Feed(ctx context.Context, userID uint) ([]*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post with a server-assigned creation timestamp. Content
// is escaped here, once, before the row is written.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.Content = validation.Sanitize(post.Content)

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", post.UserID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID returns the post joined with its author.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyCommentCount(r.db.WithContext(ctx)).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// Feed returns posts authored by the user or by anyone connected to them by
// a friend edge in either direction, newest first, each annotated with its
// comment count.
func (r *postRepository) Feed(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyCommentCount(r.db.WithContext(ctx)).
		Preload("User").
		Where("posts.user_id = ?"+
			" OR posts.user_id IN (SELECT friend_id FROM friends WHERE user_id = ?)"+
			" OR posts.user_id IN (SELECT user_id FROM friends WHERE friend_id = ?)",
			userID, userID, userID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyCommentCount adds a subquery to fetch the comment count in a single query.
func (r *postRepository) applyCommentCount(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Post{}).
		Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count")
}
