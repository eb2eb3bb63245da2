package server

import (
	"workwire/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetConnections handles GET /api/connections
func (s *Server) GetConnections(c *fiber.Ctx) error {
	connections, err := s.connService.GetConnections(c.Context(), userID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondCount(c, connections, len(connections))
}

// GetSuggestions handles GET /api/connections/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	suggestions, err := s.connService.GetSuggestions(c.Context(), userID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondCount(c, suggestions, len(suggestions))
}

// SendConnectionRequest handles POST /api/connections/request/:id
func (s *Server) SendConnectionRequest(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	conn, err := s.connService.SendRequest(c.Context(), userID(c), targetID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, conn)
}

// AcceptConnectionRequest handles PUT /api/connections/accept/:id
func (s *Server) AcceptConnectionRequest(c *fiber.Ctx) error {
	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	conn, err := s.connService.Accept(c.Context(), userID(c), requestID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, conn)
}

// RejectConnectionRequest handles PUT /api/connections/reject/:id
func (s *Server) RejectConnectionRequest(c *fiber.Ctx) error {
	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	conn, err := s.connService.Reject(c.Context(), userID(c), requestID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, conn)
}

// RemoveConnection handles DELETE /api/connections/:id
func (s *Server) RemoveConnection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.connService.Remove(c.Context(), userID(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"message": "Connection removed"})
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	conn, err := s.connService.Follow(c.Context(), userID(c), targetID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, conn)
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.connService.Unfollow(c.Context(), userID(c), targetID); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"message": "Unfollowed"})
}
