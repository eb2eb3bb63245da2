package server

import (
	"workwire/internal/models"
	"workwire/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	p := parsePagination(c)
	users, total, pagination, err := s.userService.ListUsers(c.Context(), p.Page, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, users, int(total), pagination)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, user)
}

// UpdateUser handles PUT /api/users/:id. Users may only edit themselves.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if id != userID(c) {
		return models.RespondWithError(c, models.NewUnauthorizedError("Not authorized to update this user"))
	}

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Headline  string `json:"headline"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.UpdateUser(c.Context(), service.UpdateUserInput{
		UserID:    id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Headline:  req.Headline,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id. Users may only delete themselves.
// Content authored by the account is kept.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if id != userID(c) {
		return models.RespondWithError(c, models.NewUnauthorizedError("Not authorized to delete this user"))
	}

	if err := s.userService.DeleteUser(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"message": "User deleted"})
}

// GetProfile handles GET /api/users/:id/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	profile, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, profile)
}

// UpdateProfile handles PUT /api/users/:id/profile. Users may only edit
// their own profile; the profile row is created on first write.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if id != userID(c) {
		return models.RespondWithError(c, models.NewUnauthorizedError("Not authorized to update this profile"))
	}

	var req struct {
		Avatar          *string                     `json:"avatar"`
		BackgroundImage *string                     `json:"background_image"`
		About           *string                     `json:"about"`
		Experience      []models.ExperienceEntry    `json:"experience"`
		Education       []models.EducationEntry     `json:"education"`
		Skills          []string                    `json:"skills"`
		Certifications  []models.CertificationEntry `json:"certifications"`
		Languages       []models.LanguageEntry      `json:"languages"`
		SocialLinks     *models.SocialLinks         `json:"social_links"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	profile, err := s.userService.UpsertProfile(c.Context(), service.UpdateProfileInput{
		UserID:          id,
		Avatar:          req.Avatar,
		BackgroundImage: req.BackgroundImage,
		About:           req.About,
		Experience:      req.Experience,
		Education:       req.Education,
		Skills:          req.Skills,
		Certifications:  req.Certifications,
		Languages:       req.Languages,
		SocialLinks:     req.SocialLinks,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, profile)
}
