// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// ExperienceEntry is one position on a profile.
type ExperienceEntry struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// EducationEntry is one school record on a profile.
type EducationEntry struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// CertificationEntry is one certification on a profile.
type CertificationEntry struct {
	Name           string     `json:"name"`
	Organization   string     `json:"organization"`
	IssueDate      *time.Time `json:"issue_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	CredentialURL  string     `json:"credential_url,omitempty"`
}

// LanguageEntry is one language/proficiency pair on a profile.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// SocialLinks holds the profile's external links.
type SocialLinks struct {
	Website string `json:"website,omitempty"`
	Twitter string `json:"twitter,omitempty"`
	GitHub  string `json:"github,omitempty"`
	YouTube string `json:"youtube,omitempty"`
}

// Profile holds the free-form career data attached one-to-one to a user.
type Profile struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	UserID          uint                 `gorm:"not null;uniqueIndex" json:"user_id"`
	User            User                 `gorm:"foreignKey:UserID" json:"user"`
	Avatar          string               `json:"avatar"`
	BackgroundImage string               `json:"background_image"`
	About           string               `gorm:"type:text" json:"about"`
	Experience      []ExperienceEntry    `gorm:"serializer:json" json:"experience,omitempty"`
	Education       []EducationEntry     `gorm:"serializer:json" json:"education,omitempty"`
	Skills          []string             `gorm:"serializer:json" json:"skills,omitempty"`
	Certifications  []CertificationEntry `gorm:"serializer:json" json:"certifications,omitempty"`
	Languages       []LanguageEntry      `gorm:"serializer:json" json:"languages,omitempty"`
	SocialLinks     SocialLinks          `gorm:"serializer:json" json:"social_links"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`
}
