package repository

import (
	"context"
	"errors"

	"parlor/internal/models"
	"parlor/internal/validation"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, username string, profile models.Profile) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByUsername looks up a user by exact, case-sensitive username.
// A missing user is reported as (nil, nil), not as an error, so callers
// always branch on absence explicitly.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// Create inserts a new user. Name fields are escaped here, once, before the
// row is written. A duplicate username surfaces as a CONFLICT AppError from
// the unique index, which is the authoritative defense.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.FirstName = validation.Sanitize(user.FirstName)
	user.LastName = validation.Sanitize(user.LastName)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Username is already taken", err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateProfile sets all six profile fields for the named user in a single
// statement and reports the number of rows affected. Free-text fields are
// escaped here, once, before the write.
func (r *userRepository) UpdateProfile(ctx context.Context, username string, profile models.Profile) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"education":   validation.Sanitize(profile.Education),
			"employment":  validation.Sanitize(profile.Employment),
			"music":       validation.Sanitize(profile.Music),
			"movie":       validation.Sanitize(profile.Movie),
			"nationality": validation.Sanitize(profile.Nationality),
			"birthday":    validation.Sanitize(profile.Birthday),
		})
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
