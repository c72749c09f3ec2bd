package repository

import (
	"context"
	"errors"

	"socialite/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for profile records.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// Save upserts the profile with merge semantics: zero-valued fields of
	// the incoming record leave the stored fields untouched.
	Save(ctx context.Context, user *models.User) error
	UpdateAvatarURL(ctx context.Context, id, avatarURL string) error
	Search(ctx context.Context, query string, limit, offset int) ([]models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.WrapStoreError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.WrapStoreError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User already exists")
		}
		return models.WrapStoreError(err)
	}
	return nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return models.NewValidationError("User id is required")
	}

	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(user) // Updates skips zero-valued fields, preserving them
	if res.Error != nil {
		return models.WrapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("User already exists")
			}
			return models.WrapStoreError(err)
		}
	}
	return nil
}

func (r *userRepository) UpdateAvatarURL(ctx context.Context, id, avatarURL string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL)
	if res.Error != nil {
		return models.WrapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	return nil
}

func (r *userRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	var users []models.User
	like := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("name LIKE ? OR email LIKE ?", like, like).
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return users, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return users, nil
}
