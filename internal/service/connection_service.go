// Package service provides application business logic (connections, feed, messaging, jobs).
package service

import (
	"context"

	"workwire/internal/cache"
	"workwire/internal/models"
	"workwire/internal/repository"
)

// suggestionLimit caps the number of users returned by GetSuggestions.
const suggestionLimit = 10

// ConnectionService resolves the caller's connection graph: accepted
// connections, pending requests and suggestion candidates.
type ConnectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

// NewConnectionService returns a new ConnectionService.
func NewConnectionService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) *ConnectionService {
	return &ConnectionService{
		connRepo: connRepo,
		userRepo: userRepo,
	}
}

// GetConnections returns the users with an accepted connection to userID,
// regardless of which side initiated it.
func (s *ConnectionService) GetConnections(ctx context.Context, userID uint) ([]models.ConnectedUser, error) {
	conns, err := s.connRepo.GetAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	connected := make([]models.ConnectedUser, 0, len(conns))
	for i := range conns {
		conn := &conns[i]
		other := conn.Recipient
		if conn.RecipientID == userID {
			other = conn.Requester
		}
		if other == nil {
			continue
		}
		connected = append(connected, models.ConnectedUser{
			ConnectionID: conn.ID,
			User:         other.Summary(),
			CreatedAt:    conn.CreatedAt,
		})
	}
	return connected, nil
}

// GetSuggestions returns up to 10 users with no connection record of any
// status involving the caller. Order is storage order.
func (s *ConnectionService) GetSuggestions(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	var suggestions []models.UserSummary
	err := cache.Aside(ctx, cache.SuggestionsKey(userID), &suggestions, cache.SuggestionsTTL, func() error {
		users, err := s.connRepo.GetSuggestions(ctx, userID, suggestionLimit)
		if err != nil {
			return err
		}
		suggestions = make([]models.UserSummary, 0, len(users))
		for i := range users {
			suggestions = append(suggestions, users[i].Summary())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// SendRequest creates a pending connection request from userID to targetID.
// Any existing record between the pair, of any status, makes this a conflict;
// a previously rejected pair can never retry.
func (s *ConnectionService) SendRequest(ctx context.Context, userID, targetID uint) (*models.Connection, error) {
	if userID == targetID {
		return nil, models.NewValidationError("You cannot connect with yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	existing, err := s.connRepo.GetBetweenUsers(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Connection request already exists")
	}

	conn := &models.Connection{
		RequesterID: userID,
		RecipientID: targetID,
		Status:      models.ConnectionStatusPending,
	}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}

	cache.InvalidateSuggestions(ctx, userID, targetID)

	return conn, nil
}

// Accept marks a pending request as accepted. Only the recipient of a
// pending request may accept; everything else is reported as not-found so
// the caller cannot probe the request's actual state.
func (s *ConnectionService) Accept(ctx context.Context, userID, connectionID uint) (*models.Connection, error) {
	conn, err := s.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.RecipientID != userID || conn.Status != models.ConnectionStatusPending {
		return nil, models.NewNotFoundError("Connection request")
	}

	if err := s.connRepo.UpdateStatus(ctx, connectionID, models.ConnectionStatusAccepted); err != nil {
		return nil, err
	}

	conn.Status = models.ConnectionStatusAccepted
	return conn, nil
}

// Reject marks a pending request as rejected. The row is kept, which blocks
// any future request between the pair.
func (s *ConnectionService) Reject(ctx context.Context, userID, connectionID uint) (*models.Connection, error) {
	conn, err := s.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.RecipientID != userID || conn.Status != models.ConnectionStatusPending {
		return nil, models.NewNotFoundError("Connection request")
	}

	if err := s.connRepo.UpdateStatus(ctx, connectionID, models.ConnectionStatusRejected); err != nil {
		return nil, err
	}

	conn.Status = models.ConnectionStatusRejected
	return conn, nil
}

// Remove deletes an accepted connection. Either party may remove it.
func (s *ConnectionService) Remove(ctx context.Context, userID, connectionID uint) error {
	conn, err := s.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn.Status != models.ConnectionStatusAccepted ||
		(conn.RequesterID != userID && conn.RecipientID != userID) {
		return models.NewNotFoundError("Connection")
	}

	if err := s.connRepo.Delete(ctx, connectionID); err != nil {
		return err
	}

	cache.InvalidateSuggestions(ctx, conn.RequesterID, conn.RecipientID)
	return nil
}

// Follow creates a pending connection from userID toward targetID. Unlike
// SendRequest, only the directed pair is checked for duplicates.
func (s *ConnectionService) Follow(ctx context.Context, userID, targetID uint) (*models.Connection, error) {
	if userID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	existing, err := s.connRepo.GetDirected(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Already following or connection request pending")
	}

	conn := &models.Connection{
		RequesterID: userID,
		RecipientID: targetID,
		Status:      models.ConnectionStatusPending,
	}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}

	cache.InvalidateSuggestions(ctx, userID, targetID)
	return conn, nil
}

// Unfollow removes the connection created by userID toward targetID.
func (s *ConnectionService) Unfollow(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return models.NewValidationError("You cannot unfollow yourself")
	}

	conn, err := s.connRepo.GetDirected(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if conn == nil {
		return models.NewNotFoundError("Connection")
	}

	if err := s.connRepo.Delete(ctx, conn.ID); err != nil {
		return err
	}

	cache.InvalidateSuggestions(ctx, userID, targetID)
	return nil
}
