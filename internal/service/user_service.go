package service

import (
	"context"
	"errors"

	"workwire/internal/cache"
	"workwire/internal/models"
	"workwire/internal/repository"
	"workwire/internal/validation"
)

// UserService manages account records and their extended profiles.
type UserService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// UpdateUserInput carries the editable account fields. Empty strings leave
// the current value untouched.
type UpdateUserInput struct {
	UserID    uint
	FirstName string
	LastName  string
	Email     string
	Headline  string
}

// UpdateProfileInput carries the extended profile fields. Nil slices leave
// the current value untouched.
type UpdateProfileInput struct {
	UserID          uint
	Avatar          *string
	BackgroundImage *string
	About           *string
	Experience      []models.ExperienceEntry
	Education       []models.EducationEntry
	Skills          []string
	Certifications  []models.CertificationEntry
	Languages       []models.LanguageEntry
	SocialLinks     *models.SocialLinks
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *UserService {
	return &UserService{userRepo: userRepo, profileRepo: profileRepo}
}

// ListUsers returns a page of accounts with the overall total.
func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, models.Pagination, error) {
	users, err := s.userRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}
	return users, total, models.BuildPagination(page, limit, total), nil
}

// GetUser returns a single account by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		u, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		user = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser edits the caller's own account fields.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		if err := validation.ValidateName(in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName(in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = in.LastName
	}
	if in.Email != "" && in.Email != user.Email {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Email already in use")
		}
		user.Email = in.Email
	}
	if in.Headline != "" {
		user.Headline = in.Headline
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	cache.InvalidateUser(ctx, user.ID)
	return user, nil
}

// DeleteUser removes the caller's own account. Posts, connections and
// messages authored by the account are kept.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// GetProfile returns the extended profile for userID.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		p, err := s.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		profile = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates or edits the caller's extended profile.
func (s *UserService) UpsertProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
			return nil, err
		}
		profile = &models.Profile{UserID: in.UserID}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	if in.Avatar != nil {
		if *in.Avatar != "" {
			if err := validation.ValidateURL(*in.Avatar); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
		}
		profile.Avatar = *in.Avatar
	}
	if in.BackgroundImage != nil {
		if *in.BackgroundImage != "" {
			if err := validation.ValidateURL(*in.BackgroundImage); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
		}
		profile.BackgroundImage = *in.BackgroundImage
	}
	if in.About != nil {
		profile.About = *in.About
	}
	if in.Experience != nil {
		profile.Experience = in.Experience
	}
	if in.Education != nil {
		profile.Education = in.Education
	}
	if in.Skills != nil {
		profile.Skills = in.Skills
	}
	if in.Certifications != nil {
		profile.Certifications = in.Certifications
	}
	if in.Languages != nil {
		profile.Languages = in.Languages
	}
	if in.SocialLinks != nil {
		profile.SocialLinks = *in.SocialLinks
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.ProfileKey(in.UserID))
	return profile, nil
}
