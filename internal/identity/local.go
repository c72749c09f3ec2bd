package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account is the identity provider's own credential record. It shares its id
// with the profile record but lives in a separate table; a profile can be
// missing even though the account exists (the documented orphan gap).
type Account struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocalProvider is a Provider backed by the application database with
// bcrypt-hashed passwords.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider returns a Provider backed by the given database.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{db: db}
}

// CreateAccount registers new credentials and returns the assigned user id.
func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	var existing Account
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return "", ErrAccountExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	account := Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := p.db.WithContext(ctx).Create(&account).Error; err != nil {
		return "", err
	}
	return account.ID, nil
}

// SignIn verifies credentials and returns the account's user id.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	var account Account
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return account.ID, nil
}
