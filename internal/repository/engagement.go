package repository

import (
	"context"

	"socialite/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository persists like and favorite set membership. Adds and
// removes are atomic at the store boundary (conflict-ignored insert / keyed
// delete), so concurrent toggles by different users cannot lose each other's
// writes or duplicate entries.
type EngagementRepository interface {
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
	IsLiked(ctx context.Context, postID, userID string) (bool, error)
	LikerIDs(ctx context.Context, postID string) ([]string, error)
	Likers(ctx context.Context, postID string) ([]models.User, error)
	Favorite(ctx context.Context, userID, postID string) error
	Unfavorite(ctx context.Context, userID, postID string) error
	IsFavorite(ctx context.Context, userID, postID string) (bool, error)
	FavoritePostIDs(ctx context.Context, userID string) ([]string, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) Like(ctx context.Context, postID, userID string) error {
	like := models.Like{PostID: postID, UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	return models.WrapStoreError(err)
}

func (r *engagementRepository) Unlike(ctx context.Context, postID, userID string) error {
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{}).Error
	return models.WrapStoreError(err)
}

func (r *engagementRepository) IsLiked(ctx context.Context, postID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, models.WrapStoreError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) LikerIDs(ctx context.Context, postID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ?", postID).
		Order("created_at").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return ids, nil
}

func (r *engagementRepository) Likers(ctx context.Context, postID string) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN likes ON users.id = likes.user_id").
		Where("likes.post_id = ?", postID).
		Order("likes.created_at").
		Find(&users).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return users, nil
}

func (r *engagementRepository) Favorite(ctx context.Context, userID, postID string) error {
	favorite := models.Favorite{UserID: userID, PostID: postID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite).Error
	return models.WrapStoreError(err)
}

func (r *engagementRepository) Unfavorite(ctx context.Context, userID, postID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Favorite{}).Error
	return models.WrapStoreError(err)
}

func (r *engagementRepository) IsFavorite(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.WrapStoreError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) FavoritePostIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("post_id", &ids).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return ids, nil
}
