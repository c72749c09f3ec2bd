package service

import (
	"context"
	"errors"
	"testing"

	"socialite/internal/models"
)

func TestEngagementServiceToggleLikeAdds(t *testing.T) {
	var liked, unliked bool
	repo := noopEngagementRepo()
	repo.likeFn = func(context.Context, string, string) error {
		liked = true
		return nil
	}
	repo.unlikeFn = func(context.Context, string, string) error {
		unliked = true
		return nil
	}
	repo.likerIDsFn = func(context.Context, string) ([]string, error) {
		return []string{"u1"}, nil
	}

	svc := NewEngagementService(repo, noopPostRepo(), noopUserRepo())
	post, err := svc.ToggleLike(context.Background(), "p1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !liked || unliked {
		t.Fatalf("expected like without unlike, got liked=%v unliked=%v", liked, unliked)
	}
	if len(post.LikedBy) != 1 || post.LikedBy[0] != "u1" {
		t.Fatalf("expected liked_by [u1], got %v", post.LikedBy)
	}
}

func TestEngagementServiceToggleLikeRemoves(t *testing.T) {
	var unliked bool
	repo := noopEngagementRepo()
	repo.isLikedFn = func(context.Context, string, string) (bool, error) { return true, nil }
	repo.unlikeFn = func(context.Context, string, string) error {
		unliked = true
		return nil
	}

	svc := NewEngagementService(repo, noopPostRepo(), noopUserRepo())
	if _, err := svc.ToggleLike(context.Background(), "p1", "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !unliked {
		t.Fatal("expected unlike for an already-liked post")
	}
}

func TestEngagementServiceToggleLikeMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id, _ string) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewEngagementService(noopEngagementRepo(), posts, noopUserRepo())
	_, err := svc.ToggleLike(context.Background(), "ghost", "u1")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestEngagementServiceToggleFavoriteRoundTrip(t *testing.T) {
	favorited := false
	repo := noopEngagementRepo()
	repo.isFavoriteFn = func(context.Context, string, string) (bool, error) { return favorited, nil }
	repo.favoriteFn = func(context.Context, string, string) error {
		favorited = true
		return nil
	}
	repo.unfavoriteFn = func(context.Context, string, string) error {
		favorited = false
		return nil
	}

	svc := NewEngagementService(repo, noopPostRepo(), noopUserRepo())

	on, err := svc.ToggleFavorite(context.Background(), "p1", "u1")
	if err != nil || !on {
		t.Fatalf("expected first toggle to favorite, got on=%v err=%v", on, err)
	}
	off, err := svc.ToggleFavorite(context.Background(), "p1", "u1")
	if err != nil || off {
		t.Fatalf("expected second toggle to unfavorite, got on=%v err=%v", off, err)
	}
	if favorited {
		t.Fatal("expected favorite set restored to its original state")
	}
}

func TestEngagementServiceFavoritesLoadsPosts(t *testing.T) {
	repo := noopEngagementRepo()
	repo.favoritePostIDsFn = func(context.Context, string) ([]string, error) {
		return []string{"p2", "p1"}, nil
	}
	posts := noopPostRepo()
	posts.getByIDsFn = func(_ context.Context, ids []string, _ string) ([]*models.Post, error) {
		result := make([]*models.Post, len(ids))
		for i, id := range ids {
			result[i] = &models.Post{ID: id}
		}
		return result, nil
	}

	svc := NewEngagementService(repo, posts, noopUserRepo())
	got, err := svc.Favorites(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p2" {
		t.Fatalf("expected favorites [p2 p1], got %v", got)
	}
}
