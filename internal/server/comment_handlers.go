package server

import (
	"workwire/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	comments, err := s.postService.GetComments(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondCount(c, comments, len(comments))
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.AddComment(c.Context(), userID(c), postID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, post)
}

// UpdateComment handles PUT /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	comment, err := s.postService.UpdateComment(c.Context(), userID(c), commentID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeleteComment(c.Context(), userID(c), commentID); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"message": "Comment deleted"})
}
