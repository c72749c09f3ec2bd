package service

import (
	"context"

	"socialite/internal/models"
	"socialite/internal/repository"
)

// EngagementService toggles like and favorite set membership. Both toggles
// are set-add/set-remove operations at the store boundary, so concurrent
// toggles by different users cannot corrupt the sets; a pair of toggles by
// the same user restores the original state.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
	postRepo       repository.PostRepository
	userRepo       repository.UserRepository
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		userRepo:       userRepo,
	}
}

// ToggleLike flips the user's membership in the post's like set and returns
// the post with the updated set.
func (s *EngagementService) ToggleLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}

	liked, err := s.engagementRepo.IsLiked(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.engagementRepo.Unlike(ctx, postID, userID)
	} else {
		err = s.engagementRepo.Like(ctx, postID, userID)
	}
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	likedBy, err := s.engagementRepo.LikerIDs(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.LikedBy = likedBy
	return post, nil
}

// ToggleFavorite flips the post's membership in the user's favorites set and
// reports the resulting membership.
func (s *EngagementService) ToggleFavorite(ctx context.Context, postID, userID string) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return false, err
	}

	favorited, err := s.engagementRepo.IsFavorite(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	if favorited {
		if err := s.engagementRepo.Unfavorite(ctx, userID, postID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.engagementRepo.Favorite(ctx, userID, postID); err != nil {
		return false, err
	}
	return true, nil
}

// Likers returns the users who liked the post.
func (s *EngagementService) Likers(ctx context.Context, postID string) ([]models.User, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, ""); err != nil {
		return nil, err
	}
	return s.engagementRepo.Likers(ctx, postID)
}

// Favorites returns the user's favorited posts, most recently favorited
// first.
func (s *EngagementService) Favorites(ctx context.Context, userID string) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.engagementRepo.FavoritePostIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.GetByIDs(ctx, ids, userID)
}
