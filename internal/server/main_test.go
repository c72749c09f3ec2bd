package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"socialite/internal/blob"
	"socialite/internal/cache"
	"socialite/internal/config"
	"socialite/internal/database"
	"socialite/internal/identity"
	"socialite/internal/middleware"
	"socialite/internal/models"
	"socialite/internal/repository"
	"socialite/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer builds a Server over an in-memory database with a local blob
// store. Prometheus middleware and Redis are left out; the feed cache operates
// as a no-op without a client.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db := setupHandlerTestDB(t)
	cfg := &config.Config{
		JWTSecret:   "test_secret",
		Env:         "test",
		BlobBaseURL: "/uploads",
	}
	middleware.InitMiddleware(cfg)

	blobStore, err := blob.NewLocalStore(t.TempDir(), cfg.BlobBaseURL)
	if err != nil {
		t.Fatalf("local blob store: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)

	feedCache := cache.NewFeedCache(nil)
	provider := identity.NewLocalProvider(db)

	s := &Server{
		config:         cfg,
		db:             db,
		blobStore:      blobStore,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		friendRepo:     friendRepo,
		engagementRepo: engagementRepo,
	}
	s.authService = service.NewAuthService(provider, userRepo)
	s.profileService = service.NewProfileService(userRepo, friendRepo, engagementRepo, blobStore)
	s.postService = service.NewPostService(postRepo, userRepo, friendRepo, engagementRepo, blobStore, feedCache)
	s.relationshipService = service.NewRelationshipService(friendRepo, userRepo)
	s.engagementService = service.NewEngagementService(engagementRepo, postRepo, userRepo)
	s.feedService = service.NewFeedService(friendRepo, postRepo, feedCache)
	s.commentService = service.NewCommentService(commentRepo, postRepo)

	return s, db
}

// authedApp returns a Fiber app where every request is treated as coming from
// the given user, bypassing JWT verification.
func authedApp(userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

func createHandlerTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:  name,
		Email: name + "-" + uuid.NewString()[:8] + "@example.com",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func createHandlerTestPost(t *testing.T, db *gorm.DB, authorID, text string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Text: text}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

// doJSON issues a request with an optional JSON body and returns the status
// code and the raw response body.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, raw
}

func decodeBody(t *testing.T, raw []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
}
