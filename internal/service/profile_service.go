package service

import (
	"context"

	"socialite/internal/blob"
	"socialite/internal/models"
	"socialite/internal/repository"
	"socialite/internal/validation"
)

// ProfileService provides read/write access to profile records, including the
// materialized friend and favorite id sets.
type ProfileService struct {
	userRepo       repository.UserRepository
	friendRepo     repository.FriendRepository
	engagementRepo repository.EngagementRepository
	blobStore      blob.Store
}

// NewProfileService returns a new ProfileService.
func NewProfileService(
	userRepo repository.UserRepository,
	friendRepo repository.FriendRepository,
	engagementRepo repository.EngagementRepository,
	blobStore blob.Store,
) *ProfileService {
	return &ProfileService{
		userRepo:       userRepo,
		friendRepo:     friendRepo,
		engagementRepo: engagementRepo,
		blobStore:      blobStore,
	}
}

// Get loads a profile with its friend and favorite id sets filled in.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	friendIDs, err := s.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	favoriteIDs, err := s.engagementRepo.FavoritePostIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FriendIDs = friendIDs
	user.FavoritePostIDs = favoriteIDs
	return user, nil
}

// Save upserts a profile record. Zero-valued fields are preserved, matching
// the store's merge write semantics.
func (s *ProfileService) Save(ctx context.Context, user *models.User) error {
	if user.Name != "" {
		if err := validation.ValidateName(user.Name); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	if user.Email != "" {
		if err := validation.ValidateEmail(user.Email); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return s.userRepo.Save(ctx, user)
}

// UpdateAvatar uploads the image bytes under the user's stable avatar key,
// overwriting any prior avatar, and records the returned reference on the
// profile.
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID string, imageBytes []byte) (string, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}

	contentType, ext, err := blob.SniffImage(imageBytes)
	if err != nil {
		return "", models.NewValidationError("Uploaded file is not a supported image")
	}

	ref, err := s.blobStore.Put(ctx, blob.AvatarKey(userID, ext), imageBytes, contentType)
	if err != nil {
		return "", models.NewStorageError("avatar upload", err)
	}

	if err := s.userRepo.UpdateAvatarURL(ctx, userID, ref); err != nil {
		return "", err
	}
	return ref, nil
}

// List pages through all profiles, for the find-friends surface.
func (s *ProfileService) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.userRepo.List(ctx, limit, offset)
}

// Search finds profiles matching the query by name or email.
func (s *ProfileService) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.userRepo.Search(ctx, query, limit, offset)
}
