package server

import (
	"workwire/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetConversations handles GET /api/messages
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.messageService.GetConversations(c.Context(), userID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondCount(c, conversations, len(conversations))
}

// GetMessages handles GET /api/messages/:conversationId. Reading the thread
// marks received messages as read.
func (s *Server) GetMessages(c *fiber.Ctx) error {
	conversationID, err := s.parseID(c, "conversationId")
	if err != nil {
		return nil
	}
	messages, err := s.messageService.GetMessages(c.Context(), userID(c), conversationID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondCount(c, messages, len(messages))
}

// SendMessage handles POST /api/messages/:receiverId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	receiverID, err := s.parseID(c, "receiverId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	msg, err := s.messageService.SendMessage(c.Context(), userID(c), receiverID, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, msg)
}

// DeleteMessage handles DELETE /api/messages/:id
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.messageService.DeleteMessage(c.Context(), userID(c), messageID); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"message": "Message deleted"})
}
