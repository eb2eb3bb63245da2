package server

import (
	"workwire/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, total, pagination, err := s.postService.GetFeed(c.Context(), userID(c), p.Page, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, posts, int(total), pagination)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, post)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	posts, total, pagination, err := s.postService.GetUserPosts(c.Context(), id, p.Page, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, posts, int(total), pagination)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text    string             `json:"text" validate:"required"`
		Media   []string           `json:"media"`
		Privacy models.PostPrivacy `json:"privacy"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.CreatePost(c.Context(), userID(c), req.Text, req.Media, req.Privacy)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text    *string             `json:"text"`
		Media   []string            `json:"media"`
		Privacy *models.PostPrivacy `json:"privacy"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.UpdatePost(c.Context(), userID(c), id, req.Text, req.Media, req.Privacy)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.postService.DeletePost(c.Context(), userID(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"message": "Post deleted"})
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	post, err := s.postService.LikePost(c.Context(), userID(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, post)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	post, err := s.postService.UnlikePost(c.Context(), userID(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, post)
}
