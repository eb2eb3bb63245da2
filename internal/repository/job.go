package repository

import (
	"context"
	"errors"

	"workwire/internal/models"

	"gorm.io/gorm"
)

// JobFilter narrows the jobs listing. Zero values mean "no filter".
type JobFilter struct {
	Title           string
	Location        string
	EmploymentType  string
	ExperienceLevel string
}

// JobRepository defines the interface for job data operations
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	List(ctx context.Context, filter JobFilter, limit, offset int) ([]*models.Job, error)
	Count(ctx context.Context, filter JobFilter) (int64, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uint) error
	HasApplied(ctx context.Context, jobID, userID uint) (bool, error)
	AddApplicant(ctx context.Context, application *models.JobApplication) error
	GetUserApplications(ctx context.Context, userID uint) ([]models.JobApplication, error)
	GetJobsByIDs(ctx context.Context, ids []uint) ([]models.Job, error)
}

// jobRepository implements JobRepository
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) applyFilter(db *gorm.DB, filter JobFilter) *gorm.DB {
	db = db.Where("active = ?", true)
	// LOWER on both sides keeps the substring match case-insensitive on
	// Postgres as well as sqlite, which only folds ASCII in plain LIKE.
	if filter.Title != "" {
		db = db.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Title+"%")
	}
	if filter.Location != "" {
		db = db.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.EmploymentType != "" {
		db = db.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.ExperienceLevel != "" {
		db = db.Where("experience_level = ?", filter.ExperienceLevel)
	}
	return db
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Applicants").
		First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Job")
		}
		return nil, models.NewInternalError(err)
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter, limit, offset int) ([]*models.Job, error) {
	var jobs []*models.Job
	if err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Company").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}

func (r *jobRepository) Count(ctx context.Context, filter JobFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Job{}), filter).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the job together with its application rows in one
// transaction.
func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *jobRepository) HasApplied(ctx context.Context, jobID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *jobRepository) AddApplicant(ctx context.Context, application *models.JobApplication) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *jobRepository) GetUserApplications(ctx context.Context, userID uint) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func (r *jobRepository) GetJobsByIDs(ctx context.Context, ids []uint) ([]models.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Where("id IN (?)", ids).
		Find(&jobs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}
