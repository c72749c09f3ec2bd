// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"socialite/internal/identity"
	"socialite/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// SeedPassword is the shared plaintext password for every seeded account.
const SeedPassword = "Password12345"

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	posts, err := f.CreatePosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := f.CreateFriendships(users); err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}

	if err := f.CreateEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, favorites, friendships, friend_requests, posts, users, accounts RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists an identity account plus its profile.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := gofakeit.Email()
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := identity.Account{
		Email:        email,
		PasswordHash: string(hash),
	}
	account.ID = gofakeit.UUID()
	if err := f.db.Create(&account).Error; err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        account.ID,
		Name:      gofakeit.Name(),
		Email:     email,
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", account.ID),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUsers persists count users, always including a stable test login.
func (f *Factory) CreateUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	if count > 0 {
		test, err := f.CreateUser(func(u *models.User) {
			u.Name = "Test User"
			u.Email = "test@example.com"
		})
		if err == nil {
			// Profile email and account email have to match for login
			f.db.Model(&identity.Account{}).Where("id = ?", test.ID).
				Update("email", test.Email)
			users = append(users, *test)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, *user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// CreatePosts persists count posts with realistic timestamps, some with images.
func (f *Factory) CreatePosts(users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		author := users[f.r.Intn(len(users))]

		post := models.Post{
			AuthorID: author.ID,
			Text:     gofakeit.Paragraph(1, f.r.Intn(4)+1, 8, " "),
		}
		if f.r.Float32() < 0.4 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		}

		// realistic created_at spread over the last 90 days
		daysBack := f.r.Intn(90)
		post.CreatedAt = time.Now().
			Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(f.r.Intn(24))*time.Hour)

		if err := f.db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d posts...", i)
		}
	}
	return posts, nil
}

// CreateFriendships wires a social mesh: each user befriends a handful of
// others, writing the accepted request and both directed edges.
func (f *Factory) CreateFriendships(users []models.User) error {
	for i := range users {
		degree := f.r.Intn(5) + 1
		for j := 0; j < degree; j++ {
			other := users[f.r.Intn(len(users))]
			if other.ID == users[i].ID {
				continue
			}

			request := models.FriendRequest{
				SenderID:    users[i].ID,
				RecipientID: other.ID,
				Status:      models.FriendRequestStatusAccepted,
			}
			if err := f.db.Create(&request).Error; err != nil {
				continue
			}

			edges := []models.Friendship{
				{UserID: users[i].ID, FriendID: other.ID},
				{UserID: other.ID, FriendID: users[i].ID},
			}
			for _, edge := range edges {
				// Unique index rejects duplicate edges; skip quietly
				f.db.Create(&edge)
			}
		}
	}
	return nil
}

// CreateEngagement sprinkles likes, favorites and comments over the posts.
func (f *Factory) CreateEngagement(users []models.User, posts []models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	for i := range posts {
		for j := 0; j < f.r.Intn(6); j++ {
			user := users[f.r.Intn(len(users))]
			f.db.Create(&models.Like{PostID: posts[i].ID, UserID: user.ID})
		}
		for j := 0; j < f.r.Intn(3); j++ {
			user := users[f.r.Intn(len(users))]
			f.db.Create(&models.Favorite{UserID: user.ID, PostID: posts[i].ID})
		}
		for j := 0; j < f.r.Intn(4); j++ {
			user := users[f.r.Intn(len(users))]
			comment := models.Comment{
				PostID:   posts[i].ID,
				AuthorID: user.ID,
				Text:     gofakeit.Sentence(f.r.Intn(12) + 3),
			}
			if err := f.db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
