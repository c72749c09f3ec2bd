package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user profile. Credentials live in the identity package,
// not here.
type User struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	// FriendIDs is not persisted; materialized from the friendships table
	FriendIDs []string `gorm:"-" json:"friend_ids,omitempty"`
	// FavoritePostIDs is not persisted; materialized from the favorites table
	FavoritePostIDs []string  `gorm:"-" json:"favorite_post_ids,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID if the user does not already have one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
