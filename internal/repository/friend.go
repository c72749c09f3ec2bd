package repository

import (
	"context"
	"errors"

	"socialite/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository defines persistence operations for friend requests and the
// friendship edge table. Multi-row invariants (request status plus both
// directed edges) are committed inside single transactions, the store's
// atomic-batch primitive.
type FriendRepository interface {
	CreateRequest(ctx context.Context, request *models.FriendRequest) error
	GetRequestByID(ctx context.Context, id string) (*models.FriendRequest, error)
	PendingRequestBetween(ctx context.Context, userID1, userID2 string) (*models.FriendRequest, error)
	IncomingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error)
	OutgoingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error)
	AcceptRequest(ctx context.Context, requestID string) error
	DeclineRequest(ctx context.Context, requestID string) error
	RemoveFriendship(ctx context.Context, userID1, userID2 string) error
	AreFriends(ctx context.Context, userID1, userID2 string) (bool, error)
	FriendIDs(ctx context.Context, userID string) ([]string, error)
	Friends(ctx context.Context, userID string) ([]models.User, error)
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateRequest(ctx context.Context, request *models.FriendRequest) error {
	// The pending-uniqueness check runs inside the same transaction as the
	// insert so two racing senders cannot both slip past it.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.FriendRequest{}).
			Where("status = ?", models.FriendRequestStatusPending).
			Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
				request.SenderID, request.RecipientID, request.RecipientID, request.SenderID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.NewConflictError("A friend request between these users is already pending")
		}
		return tx.Create(request).Error
	})
	return models.WrapStoreError(err)
}

func (r *friendRepository) GetRequestByID(ctx context.Context, id string) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("FriendRequest", id)
		}
		return nil, models.WrapStoreError(err)
	}
	return &request, nil
}

func (r *friendRepository) PendingRequestBetween(ctx context.Context, userID1, userID2 string) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.FriendRequestStatusPending).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no pending request exists
		}
		return nil, models.WrapStoreError(err)
	}
	return &request, nil
}

func (r *friendRepository) IncomingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("Sender").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return requests, nil
}

func (r *friendRepository) OutgoingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("Recipient").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return requests, nil
}

// AcceptRequest atomically marks the request accepted and inserts both
// directed friendship edges. All three writes commit together or not at all,
// so a reported success implies the friend graph is already symmetric.
func (r *friendRepository) AcceptRequest(ctx context.Context, requestID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND status = ?", requestID, models.FriendRequestStatusPending).
			Update("status", models.FriendRequestStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewValidationError("Friend request is not pending")
		}

		var request models.FriendRequest
		if err := tx.First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}

		edges := []models.Friendship{
			{UserID: request.SenderID, FriendID: request.RecipientID},
			{UserID: request.RecipientID, FriendID: request.SenderID},
		}
		// Conflict-ignore makes a whole-transaction retry safe.
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error
	})
	return models.WrapStoreError(err)
}

func (r *friendRepository) DeclineRequest(ctx context.Context, requestID string) error {
	res := r.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", requestID, models.FriendRequestStatusPending).
		Update("status", models.FriendRequestStatusDeclined)
	if res.Error != nil {
		return models.WrapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewValidationError("Friend request is not pending")
	}
	return nil
}

// RemoveFriendship deletes both directed edges in one transaction. Removing
// an absent edge is a no-op, so retrying after a failure is safe.
func (r *friendRepository) RemoveFriendship(ctx context.Context, userID1, userID2 string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID1, userID2, userID2, userID1).
			Delete(&models.Friendship{}).Error
	})
	return models.WrapStoreError(err)
}

func (r *friendRepository) AreFriends(ctx context.Context, userID1, userID2 string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID1, userID2).
		Count(&count).Error; err != nil {
		return false, models.WrapStoreError(err)
	}
	return count > 0, nil
}

func (r *friendRepository) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return ids, nil
}

func (r *friendRepository) Friends(ctx context.Context, userID string) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON users.id = f.friend_id").
		Where("f.user_id = ?", userID).
		Order("users.name").
		Find(&users).Error; err != nil {
		return nil, models.WrapStoreError(err)
	}
	return users, nil
}
