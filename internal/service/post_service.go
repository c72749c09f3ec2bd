package service

import (
	"context"
	"log/slog"

	"socialite/internal/blob"
	"socialite/internal/cache"
	"socialite/internal/middleware"
	"socialite/internal/models"
	"socialite/internal/repository"
	"socialite/internal/validation"

	"github.com/google/uuid"
)

// PostService provides post creation, retrieval, update and deletion.
// Author-only authorization for update/delete is enforced here rather than in
// the repository.
type PostService struct {
	postRepo       repository.PostRepository
	userRepo       repository.UserRepository
	friendRepo     repository.FriendRepository
	engagementRepo repository.EngagementRepository
	blobStore      blob.Store
	feedCache      *cache.FeedCache
}

// CreatePostInput carries the fields for creating a post. ImageBytes is
// optional; when present the image is uploaded before the record is written.
type CreatePostInput struct {
	AuthorID   string
	Text       string
	ImageBytes []byte
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	friendRepo repository.FriendRepository,
	engagementRepo repository.EngagementRepository,
	blobStore blob.Store,
	feedCache *cache.FeedCache,
) *PostService {
	return &PostService{
		postRepo:       postRepo,
		userRepo:       userRepo,
		friendRepo:     friendRepo,
		engagementRepo: engagementRepo,
		blobStore:      blobStore,
		feedCache:      feedCache,
	}
}

// CreatePost uploads the image (if any) and then writes the post record. A
// failed upload fails the whole operation so no post ever claims an image
// that was never stored.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostText(in.Text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:       uuid.NewString(),
		AuthorID: in.AuthorID,
		Text:     in.Text,
	}

	var imageKey string
	if len(in.ImageBytes) > 0 {
		contentType, ext, err := blob.SniffImage(in.ImageBytes)
		if err != nil {
			return nil, models.NewValidationError("Uploaded file is not a supported image")
		}
		imageKey = blob.PostImageKey(post.ID, ext)
		ref, err := s.blobStore.Put(ctx, imageKey, in.ImageBytes, contentType)
		if err != nil {
			return nil, models.NewStorageError("image upload", err)
		}
		post.ImageURL = ref
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		// The uploaded image is now unreferenced. Best-effort cleanup; a
		// leaked blob is harmless, a post claiming a missing image is not.
		if imageKey != "" {
			if delErr := s.blobStore.Delete(ctx, imageKey); delErr != nil {
				middleware.Logger.WarnContext(ctx, "orphaned post image cleanup failed",
					slog.String("key", imageKey),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return nil, err
	}

	s.invalidateAuthorFeeds(ctx, in.AuthorID)
	return post, nil
}

// GetPost returns a post with its like set materialized.
func (s *PostService) GetPost(ctx context.Context, postID, currentUserID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, currentUserID)
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

// ListByAuthor returns a user's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string, limit, offset int, currentUserID string) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.postRepo.ListByAuthor(ctx, authorID, limit, offset, currentUserID)
}

// ListRecent returns the public timeline: all posts, newest first.
func (s *PostService) ListRecent(ctx context.Context, limit, offset int, currentUserID string) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

// UpdatePost applies a patch to a post. Only the author may update it; fields
// absent from the patch are preserved.
func (s *PostService) UpdatePost(ctx context.Context, postID, callerID string, patch models.PostPatch) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, models.NewUnauthorizedError("Only the author can update this post")
	}

	fields := map[string]interface{}{}
	if patch.Text != nil {
		if err := validation.ValidatePostText(*patch.Text); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["text"] = *patch.Text
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if len(fields) == 0 {
		return post, nil
	}

	if err := s.postRepo.UpdateFields(ctx, postID, fields); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, postID, callerID)
}

// DeletePost removes a post and its engagement rows. Only the author may
// delete it.
func (s *PostService) DeletePost(ctx context.Context, postID, callerID string) error {
	post, err := s.postRepo.GetByID(ctx, postID, callerID)
	if err != nil {
		return err
	}
	if post.AuthorID != callerID {
		return models.NewUnauthorizedError("Only the author can delete this post")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	s.invalidateAuthorFeeds(ctx, post.AuthorID)
	return nil
}

// invalidateAuthorFeeds drops cached feeds of everyone who would see the
// author's posts.
func (s *PostService) invalidateAuthorFeeds(ctx context.Context, authorID string) {
	if s.feedCache == nil {
		return
	}
	friendIDs, err := s.friendRepo.FriendIDs(ctx, authorID)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "feed invalidation skipped",
			slog.String("author_id", authorID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.feedCache.Invalidate(ctx, friendIDs...)
}
