package service

import (
	"context"

	"socialite/internal/cache"
	"socialite/internal/models"
	"socialite/internal/repository"
)

// DefaultFeedLimit is the page size for the first (cacheable) feed page.
const DefaultFeedLimit = 50

// FeedService composes a user's feed from their friends' posts. The result
// is a finite snapshot; callers re-invoke to refresh.
type FeedService struct {
	friendRepo repository.FriendRepository
	postRepo   repository.PostRepository
	feedCache  *cache.FeedCache
}

// NewFeedService returns a new FeedService.
func NewFeedService(friendRepo repository.FriendRepository, postRepo repository.PostRepository, feedCache *cache.FeedCache) *FeedService {
	return &FeedService{
		friendRepo: friendRepo,
		postRepo:   postRepo,
		feedCache:  feedCache,
	}
}

// ComposeFeed resolves the user's friend ids and fetches posts authored by
// any of them, newest first. A user with no friends gets an empty feed. Only
// the default first page is served from cache.
func (s *FeedService) ComposeFeed(ctx context.Context, userID string, limit, offset int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultFeedLimit
	}

	cacheable := s.feedCache != nil && offset == 0 && limit == DefaultFeedLimit
	if cacheable {
		if posts, ok := s.feedCache.Get(ctx, userID); ok {
			return posts, nil
		}
	}

	friendIDs, err := s.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return []models.Post{}, nil
	}

	postPtrs, err := s.postRepo.ListByAuthors(ctx, friendIDs, limit, offset, userID)
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, len(postPtrs))
	for i, p := range postPtrs {
		posts[i] = *p
	}

	if cacheable {
		s.feedCache.Set(ctx, userID, posts)
	}
	return posts, nil
}
