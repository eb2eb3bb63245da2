// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is the single thread container for all messages between
// exactly two participants. At most one row exists per unordered pair;
// ParticipantOneID/ParticipantTwoID carry no ordering semantics.
type Conversation struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	ParticipantOneID uint           `gorm:"not null;index" json:"participant_one_id"`
	ParticipantTwoID uint           `gorm:"not null;index" json:"participant_two_id"`
	LastMessageID    *uint          `json:"last_message_id,omitempty"`
	LastMessage      *Message       `gorm:"foreignKey:LastMessageID" json:"last_message,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	ParticipantOne   *User          `gorm:"foreignKey:ParticipantOneID" json:"participant_one,omitempty"`
	ParticipantTwo   *User          `gorm:"foreignKey:ParticipantTwoID" json:"participant_two,omitempty"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.ParticipantOneID == userID || c.ParticipantTwoID == userID
}

// OtherParticipantID returns the participant that is not userID.
func (c *Conversation) OtherParticipantID(userID uint) uint {
	if c.ParticipantOneID == userID {
		return c.ParticipantTwoID
	}
	return c.ParticipantOneID
}

// Message represents a direct message inside a conversation.
type Message struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ConversationID uint           `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint           `gorm:"not null;index" json:"sender_id"`
	Sender         *User          `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	Read           bool           `gorm:"default:false" json:"read"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// ConversationSummary is the inbox projection: the other participant plus the
// last message, ordered by conversation recency.
type ConversationSummary struct {
	ID               uint        `json:"id"`
	OtherParticipant UserSummary `json:"other_participant"`
	LastMessage      *Message    `json:"last_message,omitempty"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
