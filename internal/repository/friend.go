package repository

import (
	"context"

	"parlor/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friend data operations.
// Edges are directed: every operation here reads or writes only edges
// sourced at the given user.
type FriendRepository interface {
	Create(ctx context.Context, edge *models.Friend) error
	IDsFor(ctx context.Context, userID uint) ([]uint, error)
	ListFor(ctx context.Context, userID uint) ([]models.User, error)
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// Create inserts one directed edge. Duplicate and self-edge checks are the
// caller's concern for messaging; the unique index still rejects a duplicate
// that slips through concurrently, reported as CONFLICT.
func (r *friendRepository) Create(ctx context.Context, edge *models.Friend) error {
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Friend edge already exists", err)
		}
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", edge.FriendID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// IDsFor returns the friend ids of all outbound edges, for existence checks.
func (r *friendRepository) IDsFor(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Friend{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// ListFor returns friend identity records for outbound edges, excluding
// self-edges.
func (r *friendRepository) ListFor(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friends f ON users.id = f.friend_id").
		Where("f.user_id = ? AND f.friend_id != ?", userID, userID).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
