package repository

import (
	"testing"

	"socialite/internal/models"
)

func TestUserRepositorySavePreservesZeroFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "alice")
	if err := repo.UpdateAvatarURL(ctx, user.ID, "/uploads/avatars/a.png"); err != nil {
		t.Fatalf("set avatar: %v", err)
	}

	// Merge write: only the name changes, avatar and email survive
	if err := repo.Save(ctx, &models.User{ID: user.ID, Name: "Alice Renamed"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice Renamed" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if got.AvatarURL != "/uploads/avatars/a.png" {
		t.Fatalf("expected avatar preserved, got %q", got.AvatarURL)
	}
	if got.Email != user.Email {
		t.Fatalf("expected email preserved, got %q", got.Email)
	}
}

func TestUserRepositorySaveCreatesWhenMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{ID: "11111111-1111-1111-1111-111111111111", Name: "Fresh", Email: "fresh@example.com"}
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("save new: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Fresh" {
		t.Fatalf("expected created profile, got %q", got.Name)
	}
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "alice")

	err := repo.Create(ctx, &models.User{Name: "Imposter", Email: user.Email})
	if code := appErrCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT for duplicate email, got %s", code)
	}
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(ctx, "missing")
	if code := appErrCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

func TestUserRepositorySearchMatchesNameAndEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")

	byName, err := repo.Search(ctx, "ali", 10, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "alice" {
		t.Fatalf("expected alice by name match, got %v", byName)
	}

	byEmail, err := repo.Search(ctx, "bob-", 10, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].Name != "bob" {
		t.Fatalf("expected bob by email match, got %v", byEmail)
	}
}
