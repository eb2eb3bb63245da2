package service

import (
	"context"
	"strings"

	"workwire/internal/models"
	"workwire/internal/repository"
)

// MessageService handles direct messaging: conversation lookup/creation,
// message delivery, read receipts and deletion.
type MessageService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// GetConversations returns the caller's inbox, most recently active first.
func (s *MessageService) GetConversations(ctx context.Context, userID uint) ([]models.ConversationSummary, error) {
	convs, err := s.chatRepo.GetUserConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ConversationSummary, 0, len(convs))
	for i := range convs {
		conv := &convs[i]
		other := conv.ParticipantTwo
		if conv.ParticipantTwoID == userID {
			other = conv.ParticipantOne
		}
		if other == nil {
			continue
		}
		summaries = append(summaries, models.ConversationSummary{
			ID:               conv.ID,
			OtherParticipant: other.Summary(),
			LastMessage:      conv.LastMessage,
			UpdatedAt:        conv.UpdatedAt,
		})
	}
	return summaries, nil
}

// GetMessages returns a conversation's messages oldest-first and marks every
// message received by the caller as read. A conversation the caller is not a
// participant of is reported as not-found, never as forbidden.
func (s *MessageService) GetMessages(ctx context.Context, userID, conversationID uint) ([]models.Message, error) {
	conv, err := s.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, models.NewNotFoundError("Conversation")
	}

	messages, err := s.chatRepo.GetMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if err := s.chatRepo.MarkReceivedRead(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	for i := range messages {
		if messages[i].SenderID != userID {
			messages[i].Read = true
		}
	}
	return messages, nil
}

// SendMessage delivers content from senderID to receiverID, creating the
// pair's conversation on first contact. The conversation's last-message
// pointer and recency are updated.
func (s *MessageService) SendMessage(ctx context.Context, senderID, receiverID uint, content string) (*models.Message, error) {
	if senderID == receiverID {
		return nil, models.NewValidationError("You cannot message yourself")
	}
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Message content is required")
	}

	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	conv, err := s.chatRepo.GetConversationBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		conv = &models.Conversation{
			ParticipantOneID: senderID,
			ParticipantTwoID: receiverID,
		}
		if err := s.chatRepo.CreateConversation(ctx, conv); err != nil {
			return nil, err
		}
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if err := s.chatRepo.SetLastMessage(ctx, conv.ID, &msg.ID); err != nil {
		return nil, err
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err == nil {
		msg.Sender = sender
	}
	return msg, nil
}

// DeleteMessage removes one of the caller's own messages. When the deleted
// message was the conversation's latest, the last-message pointer is repointed
// at the most recent remaining message.
func (s *MessageService) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	msg, err := s.chatRepo.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != userID {
		return models.NewUnauthorizedError("Not authorized to delete this message")
	}
	return s.chatRepo.DeleteMessage(ctx, msg)
}
