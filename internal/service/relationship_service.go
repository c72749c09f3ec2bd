package service

import (
	"context"

	"socialite/internal/models"
	"socialite/internal/repository"
)

// RelationshipService manages friend requests and the symmetric friend graph.
type RelationshipService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *RelationshipService {
	return &RelationshipService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendRequest creates a pending friend request from sender to recipient.
// Self-requests, duplicate pending requests (in either direction) and
// requests between existing friends are rejected.
func (s *RelationshipService) SendRequest(ctx context.Context, senderID, recipientID string) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, models.NewValidationError("Cannot send a friend request to yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	friends, err := s.friendRepo.AreFriends(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, models.NewConflictError("You are already friends")
	}

	request := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.FriendRequestStatusPending,
	}
	if err := s.friendRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return s.friendRepo.GetRequestByID(ctx, request.ID)
}

// Accept transitions a pending request to accepted and links both users as
// friends. The status change and both friendship edges commit atomically; on
// transient failure the caller retries the whole operation, which is safe
// because the edge inserts are conflict-ignored.
func (s *RelationshipService) Accept(ctx context.Context, requestID, callerID string) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.RecipientID != callerID {
		return nil, models.NewUnauthorizedError("Only the recipient can accept a friend request")
	}
	if request.Status != models.FriendRequestStatusPending {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.friendRepo.AcceptRequest(ctx, requestID); err != nil {
		return nil, err
	}
	return s.friendRepo.GetRequestByID(ctx, requestID)
}

// Decline transitions a pending request to declined. The friend graph is not
// touched.
func (s *RelationshipService) Decline(ctx context.Context, requestID, callerID string) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.RecipientID != callerID {
		return nil, models.NewUnauthorizedError("Only the recipient can decline a friend request")
	}
	if request.Status != models.FriendRequestStatusPending {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.friendRepo.DeclineRequest(ctx, requestID); err != nil {
		return nil, err
	}
	return s.friendRepo.GetRequestByID(ctx, requestID)
}

// RemoveFriend deletes both directions of the friendship in one transaction.
// Removing an absent friendship is a no-op, so callers may retry until both
// sides are confirmed removed.
func (s *RelationshipService) RemoveFriend(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return models.NewValidationError("Cannot remove yourself")
	}
	return s.friendRepo.RemoveFriendship(ctx, userID, targetID)
}

// Friends returns the user's friends.
func (s *RelationshipService) Friends(ctx context.Context, userID string) ([]models.User, error) {
	return s.friendRepo.Friends(ctx, userID)
}

// IncomingRequests returns pending requests addressed to the user.
func (s *RelationshipService) IncomingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	return s.friendRepo.IncomingRequests(ctx, userID)
}

// OutgoingRequests returns pending requests sent by the user.
func (s *RelationshipService) OutgoingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	return s.friendRepo.OutgoingRequests(ctx, userID)
}
