// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a post authored by a user.
type Post struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID string `gorm:"type:uuid;not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Text     string `gorm:"type:text;not null" json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	// LikedBy is not persisted; materialized from the likes table
	LikedBy []string `gorm:"-" json:"liked_by,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostPatch carries the updatable fields of a post. Nil fields are preserved.
type PostPatch struct {
	Text     *string `json:"text"`
	ImageURL *string `json:"image_url"`
}

// BeforeCreate assigns a UUID if the post does not already have one.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
