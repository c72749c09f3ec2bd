package models

import "time"

// Favorite represents a post bookmarked by a user, keyed by (user, post).
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_post_favorite" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_post_favorite" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
