package repository

import (
	"testing"
)

func TestEngagementRepositoryLikeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewEngagementRepository(db)
	user := createTestUser(t, db, "alice")
	post := createTestPost(t, db, user.ID, "hello")

	for i := 0; i < 2; i++ {
		if err := repo.Like(ctx, post.ID, user.ID); err != nil {
			t.Fatalf("like %d: %v", i, err)
		}
	}

	ids, err := repo.LikerIDs(ctx, post.ID)
	if err != nil {
		t.Fatalf("liker ids: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected a single like row after repeated likes, got %d", len(ids))
	}
}

func TestEngagementRepositoryUnlikeRemovesMembership(t *testing.T) {
	db := newTestDB(t)
	repo := NewEngagementRepository(db)
	user := createTestUser(t, db, "alice")
	post := createTestPost(t, db, user.ID, "hello")

	if err := repo.Like(ctx, post.ID, user.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := repo.Unlike(ctx, post.ID, user.ID); err != nil {
		t.Fatalf("unlike: %v", err)
	}

	liked, err := repo.IsLiked(ctx, post.ID, user.ID)
	if err != nil {
		t.Fatalf("is liked: %v", err)
	}
	if liked {
		t.Fatal("expected like removed")
	}

	// Unliking when not liked is a no-op
	if err := repo.Unlike(ctx, post.ID, user.ID); err != nil {
		t.Fatalf("repeat unlike should be a no-op, got %v", err)
	}
}

func TestEngagementRepositoryFavoriteSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewEngagementRepository(db)
	user := createTestUser(t, db, "alice")
	first := createTestPost(t, db, user.ID, "one")
	second := createTestPost(t, db, user.ID, "two")

	for _, postID := range []string{first.ID, second.ID, first.ID} {
		if err := repo.Favorite(ctx, user.ID, postID); err != nil {
			t.Fatalf("favorite %s: %v", postID, err)
		}
	}

	ids, err := repo.FavoritePostIDs(ctx, user.ID)
	if err != nil {
		t.Fatalf("favorite ids: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 favorites after duplicate add, got %d", len(ids))
	}

	if err := repo.Unfavorite(ctx, user.ID, first.ID); err != nil {
		t.Fatalf("unfavorite: %v", err)
	}
	fav, err := repo.IsFavorite(ctx, user.ID, first.ID)
	if err != nil {
		t.Fatalf("is favorite: %v", err)
	}
	if fav {
		t.Fatal("expected favorite removed")
	}
}

func TestEngagementRepositoryLikersReturnsUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewEngagementRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "hello")

	for _, u := range []string{alice.ID, bob.ID} {
		if err := repo.Like(ctx, post.ID, u); err != nil {
			t.Fatalf("like: %v", err)
		}
	}

	likers, err := repo.Likers(ctx, post.ID)
	if err != nil {
		t.Fatalf("likers: %v", err)
	}
	if len(likers) != 2 {
		t.Fatalf("expected 2 likers, got %d", len(likers))
	}
}
