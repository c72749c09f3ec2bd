package models

import "time"

// Like represents a user's like on a post.
// The combination of PostID and UserID must be unique, which makes the like
// toggle an atomic set-add/set-remove at the store rather than a
// read-modify-write on an array field.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_user_like" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_user_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
