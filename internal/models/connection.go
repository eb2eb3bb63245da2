// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// ConnectionStatus represents the status of a connection request.
type ConnectionStatus string

const (
	// ConnectionStatusPending indicates a request awaiting the recipient's decision.
	ConnectionStatusPending ConnectionStatus = "pending"
	// ConnectionStatusAccepted indicates an established connection.
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	// ConnectionStatusRejected indicates a declined request.
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// Connection represents a relationship between two users. It is stored
// directed (requester -> recipient) but treated as symmetric once accepted.
// At most one row exists per unordered pair, of any status.
type Connection struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;index" json:"requester_id"`
	RecipientID uint             `gorm:"not null;index" json:"recipient_id"`
	Status      ConnectionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	Requester   *User            `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Recipient   *User            `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// OtherUserID returns the id of the participant that is not userID.
func (c *Connection) OtherUserID(userID uint) uint {
	if c.RequesterID == userID {
		return c.RecipientID
	}
	return c.RequesterID
}

// ConnectedUser is the projection returned by the connections listing: the
// connection row id plus the user on the other side.
type ConnectedUser struct {
	ConnectionID uint        `json:"connection_id"`
	User         UserSummary `json:"user"`
	CreatedAt    time.Time   `json:"created_at"`
}
