// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// PostPrivacy represents the visibility level of a post.
type PostPrivacy string

const (
	// PostPrivacyPublic makes a post visible to every authenticated user.
	PostPrivacyPublic PostPrivacy = "public"
	// PostPrivacyConnections restricts a post to the author's connections.
	PostPrivacyConnections PostPrivacy = "connections"
	// PostPrivacyPrivate restricts a post to the author.
	PostPrivacyPrivate PostPrivacy = "private"
)

// Post represents a feed post.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Media     []string       `gorm:"serializer:json" json:"media,omitempty"`
	Privacy   PostPrivacy    `gorm:"type:varchar(20);default:'public'" json:"privacy"`
	Likes     []Like         `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like records that a user liked a post. One row per user per post.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is the comment projection embedded in post responses: the
// author appears as a display name, not a full user record.
type CommentView struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostView is the post projection returned by the feed and post endpoints.
// Likes collapse to the liking user IDs.
type PostView struct {
	ID        uint          `json:"id"`
	User      UserSummary   `json:"user"`
	Text      string        `json:"text"`
	Media     []string      `json:"media,omitempty"`
	Privacy   PostPrivacy   `json:"privacy"`
	Likes     []uint        `json:"likes"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// View builds the response projection of the post. Likes and comments must
// already be loaded.
func (p *Post) View() PostView {
	likes := make([]uint, 0, len(p.Likes))
	for i := range p.Likes {
		likes = append(likes, p.Likes[i].UserID)
	}
	comments := make([]CommentView, 0, len(p.Comments))
	for i := range p.Comments {
		c := &p.Comments[i]
		comments = append(comments, CommentView{
			ID:        c.ID,
			Text:      c.Text,
			Author:    c.User.DisplayName(),
			AuthorID:  c.UserID,
			CreatedAt: c.CreatedAt,
		})
	}
	return PostView{
		ID:        p.ID,
		User:      p.User.Summary(),
		Text:      p.Text,
		Media:     p.Media,
		Privacy:   p.Privacy,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
