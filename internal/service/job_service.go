package service

import (
	"context"
	"strings"
	"time"

	"workwire/internal/models"
	"workwire/internal/repository"
)

// JobService manages job postings and applications.
type JobService struct {
	jobRepo repository.JobRepository
}

// NewJobService returns a new JobService.
func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// ListJobs returns a page of active job postings matching the filter,
// newest first.
func (s *JobService) ListJobs(ctx context.Context, filter repository.JobFilter, page, limit int) ([]*models.Job, int64, models.Pagination, error) {
	jobs, err := s.jobRepo.List(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}
	total, err := s.jobRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}
	return jobs, total, models.BuildPagination(page, limit, total), nil
}

// GetJob returns a single posting with its applicant entries.
func (s *JobService) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// CreateJob stores a posting owned by companyID.
func (s *JobService) CreateJob(ctx context.Context, companyID uint, job *models.Job) (*models.Job, error) {
	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Description) == "" || strings.TrimSpace(job.Location) == "" {
		return nil, models.NewValidationError("Title, description and location are required")
	}
	if !validEmploymentType(job.EmploymentType) {
		return nil, models.NewValidationError("Invalid employment type")
	}
	if !validExperienceLevel(job.ExperienceLevel) {
		return nil, models.NewValidationError("Invalid experience level")
	}

	job.CompanyID = companyID
	job.Active = true
	if job.ExpiresAt.IsZero() {
		job.ExpiresAt = time.Now().AddDate(0, 1, 0)
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, job.ID)
}

// UpdateJob applies edits to a posting owned by userID.
func (s *JobService) UpdateJob(ctx context.Context, userID, jobID uint, apply func(*models.Job) error) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != userID {
		return nil, models.NewUnauthorizedError("Not authorized to update this job")
	}
	if err := apply(job); err != nil {
		return nil, err
	}
	if !validEmploymentType(job.EmploymentType) {
		return nil, models.NewValidationError("Invalid employment type")
	}
	if !validExperienceLevel(job.ExperienceLevel) {
		return nil, models.NewValidationError("Invalid experience level")
	}
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a posting owned by userID together with its
// applications.
func (s *JobService) DeleteJob(ctx context.Context, userID, jobID uint) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.CompanyID != userID {
		return models.NewUnauthorizedError("Not authorized to delete this job")
	}
	return s.jobRepo.Delete(ctx, jobID)
}

// Apply records userID's application against the posting. Applying to an
// inactive posting is a validation error; applying twice is a conflict.
func (s *JobService) Apply(ctx context.Context, userID, jobID uint) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Active {
		return nil, models.NewValidationError("This job is no longer active")
	}

	applied, err := s.jobRepo.HasApplied(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, models.NewConflictError("You have already applied to this job")
	}

	application := &models.JobApplication{
		JobID:     jobID,
		UserID:    userID,
		Status:    models.ApplicationApplied,
		AppliedAt: time.Now(),
	}
	if err := s.jobRepo.AddApplicant(ctx, application); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, jobID)
}

// GetUserApplications returns the caller's own applications, most recent
// first. Only the caller's entry per job is exposed, never other applicants.
func (s *JobService) GetUserApplications(ctx context.Context, userID uint) ([]models.UserApplication, error) {
	applications, err := s.jobRepo.GetUserApplications(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uint, 0, len(applications))
	for i := range applications {
		jobIDs = append(jobIDs, applications[i].JobID)
	}
	jobs, err := s.jobRepo.GetJobsByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	jobsByID := make(map[uint]*models.Job, len(jobs))
	for i := range jobs {
		jobsByID[jobs[i].ID] = &jobs[i]
	}

	result := make([]models.UserApplication, 0, len(applications))
	for i := range applications {
		app := &applications[i]
		job, ok := jobsByID[app.JobID]
		if !ok {
			continue
		}
		result = append(result, models.UserApplication{
			Job: models.JobSummary{
				ID:             job.ID,
				Title:          job.Title,
				Company:        job.Company.Summary(),
				Location:       job.Location,
				EmploymentType: job.EmploymentType,
			},
			Status:    app.Status,
			AppliedAt: app.AppliedAt,
		})
	}
	return result, nil
}

func validEmploymentType(t models.EmploymentType) bool {
	switch t {
	case models.EmploymentFullTime, models.EmploymentPartTime, models.EmploymentContract,
		models.EmploymentTemporary, models.EmploymentInternship:
		return true
	}
	return false
}

func validExperienceLevel(l models.ExperienceLevel) bool {
	switch l {
	case models.ExperienceLevelEntry, models.ExperienceLevelMidSenior, models.ExperienceLevelSenior,
		models.ExperienceLevelDirector, models.ExperienceLevelExecutive:
		return true
	}
	return false
}
