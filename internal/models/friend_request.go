// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendRequestStatus represents the status of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestStatusPending indicates a request awaiting a decision.
	FriendRequestStatusPending FriendRequestStatus = "pending"
	// FriendRequestStatusAccepted indicates an accepted request. Terminal.
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	// FriendRequestStatusDeclined indicates a declined request. Terminal.
	FriendRequestStatusDeclined FriendRequestStatus = "declined"
)

// FriendRequest represents a friend request from one user to another.
// Status only ever transitions pending -> accepted or pending -> declined.
type FriendRequest struct {
	ID          string              `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID    string              `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID string              `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Status      FriendRequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	// Relationships
	Sender    User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// BeforeCreate assigns a UUID if the request does not already have one.
func (f *FriendRequest) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
