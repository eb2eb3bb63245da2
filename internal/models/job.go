// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// EmploymentType enumerates the supported employment arrangements.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentTemporary  EmploymentType = "Temporary"
	EmploymentInternship EmploymentType = "Internship"
)

// ExperienceLevel enumerates the supported seniority levels.
type ExperienceLevel string

const (
	ExperienceLevelEntry     ExperienceLevel = "Entry level"
	ExperienceLevelMidSenior ExperienceLevel = "Mid-Senior level"
	ExperienceLevelSenior    ExperienceLevel = "Senior level"
	ExperienceLevelDirector  ExperienceLevel = "Director"
	ExperienceLevelExecutive ExperienceLevel = "Executive"
)

// ApplicationStatus enumerates the stages of a job application.
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationOffered     ApplicationStatus = "offered"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Salary is the advertised salary range for a job posting.
type Salary struct {
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Job represents a job posting owned by the posting account.
type Job struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	CompanyID       uint             `gorm:"not null;index" json:"company_id"`
	Company         User             `gorm:"foreignKey:CompanyID" json:"company"`
	Title           string           `gorm:"not null" json:"title"`
	Description     string           `gorm:"type:text;not null" json:"description"`
	Location        string           `gorm:"not null" json:"location"`
	EmploymentType  EmploymentType   `gorm:"type:varchar(20);not null" json:"employment_type"`
	ExperienceLevel ExperienceLevel  `gorm:"type:varchar(20);not null" json:"experience_level"`
	Skills          []string         `gorm:"serializer:json" json:"skills,omitempty"`
	Salary          Salary           `gorm:"serializer:json" json:"salary"`
	Applicants      []JobApplication `gorm:"foreignKey:JobID" json:"applicants,omitempty"`
	Active          bool             `gorm:"default:true" json:"active"`
	ExpiresAt       time.Time        `json:"expires_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

// JobApplication tracks one user's application against one job posting.
// One row per (job, user).
type JobApplication struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	JobID     uint              `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID    uint              `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"user_id"`
	Status    ApplicationStatus `gorm:"type:varchar(20);default:'applied'" json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}

// JobSummary is the job projection embedded in a user's application listing.
type JobSummary struct {
	ID             uint           `json:"id"`
	Title          string         `json:"title"`
	Company        UserSummary    `json:"company"`
	Location       string         `json:"location"`
	EmploymentType EmploymentType `json:"employment_type"`
}

// UserApplication pairs a job summary with the caller's own application entry.
type UserApplication struct {
	Job       JobSummary        `json:"job"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}
