// Package models contains data structures for the application's domain models.
package models

import "time"

// Friendship is a single directed edge in the friend graph. A friendship
// between two users is stored as two edges, one per direction, written in the
// same transaction so the graph is never observably asymmetric.
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_edge" json:"user_id"`
	FriendID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_edge" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}
