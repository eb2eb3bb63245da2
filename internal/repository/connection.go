package repository

import (
	"context"
	"errors"

	"workwire/internal/models"

	"gorm.io/gorm"
)

// ConnectionRepository defines the interface for connection data operations
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error)
	GetDirected(ctx context.Context, requesterID, recipientID uint) (*models.Connection, error)
	GetAccepted(ctx context.Context, userID uint) ([]models.Connection, error)
	GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error)
	GetSuggestions(ctx context.Context, userID uint, limit int) ([]models.User, error)
	UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error
	Delete(ctx context.Context, id uint) error
}

// connectionRepository implements ConnectionRepository
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		First(&conn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection request")
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

// GetBetweenUsers finds the connection row between two users in either
// direction and of any status. Returns (nil, nil) when none exists.
func (r *connectionRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

// GetDirected finds the connection created by requesterID toward recipientID,
// of any status. Returns (nil, nil) when none exists.
func (r *connectionRepository) GetDirected(ctx context.Context, requesterID, recipientID uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? AND recipient_id = ?", requesterID, recipientID).
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) GetAccepted(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("status = ? AND (requester_id = ? OR recipient_id = ?)",
			models.ConnectionStatusAccepted, userID, userID).
		Preload("Requester").
		Preload("Recipient").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Select("requester_id", "recipient_id").
		Where("status = ? AND (requester_id = ? OR recipient_id = ?)",
			models.ConnectionStatusAccepted, userID, userID).
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	ids := make([]uint, 0, len(conns))
	for i := range conns {
		ids = append(ids, conns[i].OtherUserID(userID))
	}
	return ids, nil
}

// GetSuggestions returns users with no connection row of any status involving
// userID, excluding userID itself, in storage order.
func (r *connectionRepository) GetSuggestions(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	var users []models.User
	sub := r.db.
		Model(&models.Connection{}).
		Select("CASE WHEN requester_id = ? THEN recipient_id ELSE requester_id END", userID).
		Where("requester_id = ? OR recipient_id = ?", userID, userID)

	if err := r.db.WithContext(ctx).
		Where("id != ?", userID).
		Where("id NOT IN (?)", sub).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Connection{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
