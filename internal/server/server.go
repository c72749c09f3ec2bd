// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialite/internal/blob"
	"socialite/internal/cache"
	"socialite/internal/config"
	"socialite/internal/database"
	"socialite/internal/identity"
	"socialite/internal/middleware"
	"socialite/internal/repository"
	"socialite/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	blobStore      blob.Store

	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	friendRepo     repository.FriendRepository
	engagementRepo repository.EngagementRepository

	authService         *service.AuthService
	profileService      *service.ProfileService
	postService         *service.PostService
	relationshipService *service.RelationshipService
	engagementService   *service.EngagementService
	feedService         *service.FeedService
	commentService      *service.CommentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := cache.Connect(cfg.RedisURL)

	blobStore, err := newBlobStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("blob store init failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, blobStore)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with an in-memory database and a local blob store.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, blobStore blob.Store) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)

	middleware.InitMiddleware(cfg)
	prom := middleware.InitMetrics("socialite-api")
	feedCache := cache.NewFeedCache(redisClient)
	provider := identity.NewLocalProvider(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		blobStore:      blobStore,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		friendRepo:     friendRepo,
		engagementRepo: engagementRepo,
	}

	server.authService = service.NewAuthService(provider, userRepo)
	server.profileService = service.NewProfileService(userRepo, friendRepo, engagementRepo, blobStore)
	server.postService = service.NewPostService(postRepo, userRepo, friendRepo, engagementRepo, blobStore, feedCache)
	server.relationshipService = service.NewRelationshipService(friendRepo, userRepo)
	server.engagementService = service.NewEngagementService(engagementRepo, postRepo, userRepo)
	server.feedService = service.NewFeedService(friendRepo, postRepo, feedCache)
	server.commentService = service.NewCommentService(commentRepo, postRepo)

	return server, nil
}

func newBlobStore(cfg *config.Config) (blob.Store, error) {
	if cfg.BlobDriver == "s3" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return blob.NewS3Store(ctx, cfg)
	}
	return blob.NewLocalStore(cfg.BlobLocalDir, cfg.BlobBaseURL)
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before anything that can short-circuit so browser
	// clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	// Per-operation deadline; expiry surfaces as a TIMEOUT error.
	app.Use(middleware.OperationTimeout(s.config.OpTimeout()))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes
	users := protected.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Put("/me/avatar", s.UpdateAvatar)
	users.Get("/search", s.SearchUsers)
	// Specific /:id/:resource routes BEFORE generic /:id route
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id", s.GetUserProfile)

	// Friend routes
	friends := protected.Group("/friends")
	friends.Get("/", s.GetFriends)
	// Specific /requests routes before generic /:userId
	friends.Post("/requests/:userId", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "friend_request"), s.SendFriendRequest)
	friends.Get("/requests", s.GetIncomingRequests)
	friends.Get("/requests/sent", s.GetOutgoingRequests)
	friends.Post("/requests/:requestId/accept", s.AcceptFriendRequest)
	friends.Post("/requests/:requestId/decline", s.DeclineFriendRequest)
	// Generic /:userId route must be last
	friends.Delete("/:userId", s.RemoveFriend)

	// Post routes
	posts := protected.Group("/posts")
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.ListPosts)
	// Specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/like", s.ToggleLike)
	posts.Get("/:id/likes", s.GetLikers)
	posts.Post("/:id/favorite", s.ToggleFavorite)
	posts.Post("/:id/comments", s.CreateComment)
	posts.Get("/:id/comments", s.GetComments)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Comment deletion
	protected.Delete("/comments/:id", s.DeleteComment)

	// Favorites and feed
	protected.Get("/favorites", s.GetFavorites)
	protected.Get("/feed", s.GetFeed)

	// Locally stored uploads are served as static files.
	if local, ok := s.blobStore.(*blob.LocalStore); ok {
		prefix := s.config.BlobBaseURL
		if prefix == "" {
			prefix = "/uploads"
		}
		app.Static(prefix, local.BaseDir())
	}
}

// Shutdown releases server-held resources after the HTTP listener has
// stopped accepting requests.
func (s *Server) Shutdown(_ context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			slog.Warn("error closing redis client", "error", err)
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			slog.Warn("error closing sql DB", "error", cerr)
		}
	}
	return nil
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the backing store is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
