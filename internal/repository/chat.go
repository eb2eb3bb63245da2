package repository

import (
	"context"
	"errors"

	"workwire/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for conversation and message data operations
type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *models.Conversation) error
	GetConversation(ctx context.Context, id uint) (*models.Conversation, error)
	GetConversationBetween(ctx context.Context, userID1, userID2 uint) (*models.Conversation, error)
	GetUserConversations(ctx context.Context, userID uint) ([]models.Conversation, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
	GetMessage(ctx context.Context, id uint) (*models.Message, error)
	GetMessages(ctx context.Context, convID uint) ([]models.Message, error)
	MarkReceivedRead(ctx context.Context, convID, readerID uint) error
	SetLastMessage(ctx context.Context, convID uint, msgID *uint) error
	DeleteMessage(ctx context.Context, msg *models.Message) error
}

// chatRepository implements ChatRepository
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.WithContext(ctx).First(&conv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Conversation")
		}
		return nil, models.NewInternalError(err)
	}
	return &conv, nil
}

// GetConversationBetween finds the conversation whose participant pair is
// {userID1, userID2} in either stored order. Returns (nil, nil) when none
// exists.
func (r *chatRepository) GetConversationBetween(ctx context.Context, userID1, userID2 uint) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.WithContext(ctx).
		Where("(participant_one_id = ? AND participant_two_id = ?) OR (participant_one_id = ? AND participant_two_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conv, nil
}

func (r *chatRepository) GetUserConversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	if err := r.db.WithContext(ctx).
		Where("participant_one_id = ? OR participant_two_id = ?", userID, userID).
		Preload("ParticipantOne").
		Preload("ParticipantTwo").
		Preload("LastMessage").
		Order("updated_at DESC").
		Find(&convs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return convs, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) GetMessage(ctx context.Context, id uint) (*models.Message, error) {
	var msg models.Message
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message")
		}
		return nil, models.NewInternalError(err)
	}
	return &msg, nil
}

func (r *chatRepository) GetMessages(ctx context.Context, convID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", convID).
		Preload("Sender").
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// MarkReceivedRead flags every unread message in the conversation not sent by
// readerID as read. Re-running is a no-op.
func (r *chatRepository) MarkReceivedRead(ctx context.Context, convID, readerID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND read = ?", convID, readerID, false).
		Update("read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) SetLastMessage(ctx context.Context, convID uint, msgID *uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", convID).
		Update("last_message_id", msgID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteMessage removes the message and, when it was the conversation's
// last-message pointer, repoints the conversation at the most recent
// remaining message (or clears the pointer). The whole step runs in one
// transaction so the pointer can never reference a deleted message.
func (r *chatRepository) DeleteMessage(ctx context.Context, msg *models.Message) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Message{}, msg.ID).Error; err != nil {
			return err
		}

		var conv models.Conversation
		if err := tx.First(&conv, msg.ConversationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if conv.LastMessageID == nil || *conv.LastMessageID != msg.ID {
			return nil
		}

		var latest models.Message
		findErr := tx.
			Where("conversation_id = ?", conv.ID).
			Order("created_at DESC").
			First(&latest).Error
		switch {
		case findErr == nil:
			return tx.Model(&conv).Update("last_message_id", latest.ID).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			return tx.Model(&conv).Update("last_message_id", nil).Error
		default:
			return findErr
		}
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
