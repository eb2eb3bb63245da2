package server

import (
	"time"

	"workwire/internal/models"
	"workwire/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetJobs handles GET /api/jobs with optional title/location/employment_type/
// experience_level filters.
func (s *Server) GetJobs(c *fiber.Ctx) error {
	p := parsePagination(c)
	filter := repository.JobFilter{
		Title:           c.Query("title"),
		Location:        c.Query("location"),
		EmploymentType:  c.Query("employment_type"),
		ExperienceLevel: c.Query("experience_level"),
	}

	jobs, total, pagination, err := s.jobService.ListJobs(c.Context(), filter, p.Page, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, jobs, int(total), pagination)
}

// GetJob handles GET /api/jobs/:id
func (s *Server) GetJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	job, err := s.jobService.GetJob(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, job)
}

// CreateJob handles POST /api/jobs
func (s *Server) CreateJob(c *fiber.Ctx) error {
	var req struct {
		Title           string                 `json:"title" validate:"required"`
		Description     string                 `json:"description" validate:"required"`
		Location        string                 `json:"location" validate:"required"`
		EmploymentType  models.EmploymentType  `json:"employment_type" validate:"required"`
		ExperienceLevel models.ExperienceLevel `json:"experience_level" validate:"required"`
		Skills          []string               `json:"skills"`
		Salary          models.Salary          `json:"salary"`
		ExpiresAt       *time.Time             `json:"expires_at"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		Skills:          req.Skills,
		Salary:          req.Salary,
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = *req.ExpiresAt
	}

	created, err := s.jobService.CreateJob(c.Context(), userID(c), job)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, created)
}

// UpdateJob handles PUT /api/jobs/:id
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title           *string                 `json:"title"`
		Description     *string                 `json:"description"`
		Location        *string                 `json:"location"`
		EmploymentType  *models.EmploymentType  `json:"employment_type"`
		ExperienceLevel *models.ExperienceLevel `json:"experience_level"`
		Skills          []string                `json:"skills"`
		Salary          *models.Salary          `json:"salary"`
		Active          *bool                   `json:"active"`
		ExpiresAt       *time.Time              `json:"expires_at"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	job, err := s.jobService.UpdateJob(c.Context(), userID(c), id, func(job *models.Job) error {
		if req.Title != nil {
			job.Title = *req.Title
		}
		if req.Description != nil {
			job.Description = *req.Description
		}
		if req.Location != nil {
			job.Location = *req.Location
		}
		if req.EmploymentType != nil {
			job.EmploymentType = *req.EmploymentType
		}
		if req.ExperienceLevel != nil {
			job.ExperienceLevel = *req.ExperienceLevel
		}
		if req.Skills != nil {
			job.Skills = req.Skills
		}
		if req.Salary != nil {
			job.Salary = *req.Salary
		}
		if req.Active != nil {
			job.Active = *req.Active
		}
		if req.ExpiresAt != nil {
			job.ExpiresAt = *req.ExpiresAt
		}
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, job)
}

// DeleteJob handles DELETE /api/jobs/:id
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.jobService.DeleteJob(c.Context(), userID(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"message": "Job deleted"})
}

// ApplyToJob handles POST /api/jobs/:id/apply
func (s *Server) ApplyToJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	job, err := s.jobService.Apply(c.Context(), userID(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, job)
}

// GetUserApplications handles GET /api/users/:id/applications. Application
// history is private to the account itself.
func (s *Server) GetUserApplications(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if id != userID(c) {
		return models.RespondWithError(c, models.NewUnauthorizedError("Not authorized to view these applications"))
	}

	applications, err := s.jobService.GetUserApplications(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondCount(c, applications, len(applications))
}
