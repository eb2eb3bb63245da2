package service

import (
	"context"
	"errors"
	"testing"

	"workwire/internal/models"
)

type connRepoStub struct {
	createFn              func(context.Context, *models.Connection) error
	getByIDFn             func(context.Context, uint) (*models.Connection, error)
	getBetweenUsersFn     func(context.Context, uint, uint) (*models.Connection, error)
	getDirectedFn         func(context.Context, uint, uint) (*models.Connection, error)
	getAcceptedFn         func(context.Context, uint) ([]models.Connection, error)
	getConnectedUserIDsFn func(context.Context, uint) ([]uint, error)
	getSuggestionsFn      func(context.Context, uint, int) ([]models.User, error)
	updateStatusFn        func(context.Context, uint, models.ConnectionStatus) error
	deleteFn              func(context.Context, uint) error
}

func (s *connRepoStub) Create(ctx context.Context, conn *models.Connection) error {
	return s.createFn(ctx, conn)
}
func (s *connRepoStub) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	return s.getByIDFn(ctx, id)
}
func (s *connRepoStub) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	return s.getBetweenUsersFn(ctx, userID1, userID2)
}
func (s *connRepoStub) GetDirected(ctx context.Context, requesterID, recipientID uint) (*models.Connection, error) {
	return s.getDirectedFn(ctx, requesterID, recipientID)
}
func (s *connRepoStub) GetAccepted(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.getAcceptedFn(ctx, userID)
}
func (s *connRepoStub) GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getConnectedUserIDsFn(ctx, userID)
}
func (s *connRepoStub) GetSuggestions(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.getSuggestionsFn(ctx, userID, limit)
}
func (s *connRepoStub) UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *connRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type userRepoStub struct {
	createFn          func(context.Context, *models.User) error
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByResetTokenFn func(context.Context, string) (*models.User, error)
	updateFn          func(context.Context, *models.User) error
	deleteFn          func(context.Context, uint) error
	listFn            func(context.Context, int, int) ([]models.User, error)
	countFn           func(context.Context) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	return s.getByResetTokenFn(ctx, token)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:          func(context.Context, *models.User) error { return nil },
		getByIDFn:         func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:      func(context.Context, string) (*models.User, error) { return nil, nil },
		getByResetTokenFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		updateFn:          func(context.Context, *models.User) error { return nil },
		deleteFn:          func(context.Context, uint) error { return nil },
		listFn:            func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		countFn:           func(context.Context) (int64, error) { return 0, nil },
	}
}

func noopConnRepo() *connRepoStub {
	return &connRepoStub{
		createFn:              func(context.Context, *models.Connection) error { return nil },
		getByIDFn:             func(context.Context, uint) (*models.Connection, error) { return &models.Connection{}, nil },
		getBetweenUsersFn:     func(context.Context, uint, uint) (*models.Connection, error) { return nil, nil },
		getDirectedFn:         func(context.Context, uint, uint) (*models.Connection, error) { return nil, nil },
		getAcceptedFn:         func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		getConnectedUserIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		getSuggestionsFn:      func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
		updateStatusFn:        func(context.Context, uint, models.ConnectionStatus) error { return nil },
		deleteFn:              func(context.Context, uint) error { return nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func TestConnectionServiceSendRequestSelf(t *testing.T) {
	svc := NewConnectionService(noopConnRepo(), noopUserRepo())
	_, err := svc.SendRequest(context.Background(), 3, 3)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestConnectionServiceSendRequestDuplicate(t *testing.T) {
	repo := noopConnRepo()
	repo.getBetweenUsersFn = func(context.Context, uint, uint) (*models.Connection, error) {
		return &models.Connection{ID: 7, RequesterID: 2, RecipientID: 1, Status: models.ConnectionStatusPending}, nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	_, err := svc.SendRequest(context.Background(), 1, 2)
	assertAppErrorCode(t, err, "CONFLICT")
}

func TestConnectionServiceSendRequestRejectedPairBlocked(t *testing.T) {
	// A rejected row persists and keeps blocking new requests in both
	// directions.
	repo := noopConnRepo()
	repo.getBetweenUsersFn = func(context.Context, uint, uint) (*models.Connection, error) {
		return &models.Connection{ID: 7, RequesterID: 1, RecipientID: 2, Status: models.ConnectionStatusRejected}, nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	_, err := svc.SendRequest(context.Background(), 2, 1)
	assertAppErrorCode(t, err, "CONFLICT")
}

func TestConnectionServiceSendRequestUnknownTarget(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User")
	}

	svc := NewConnectionService(noopConnRepo(), users)
	_, err := svc.SendRequest(context.Background(), 1, 99)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestConnectionServiceAcceptNotRecipient(t *testing.T) {
	repo := noopConnRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.Connection, error) {
		return &models.Connection{ID: 5, RequesterID: 10, RecipientID: 11, Status: models.ConnectionStatusPending}, nil
	}

	svc := NewConnectionService(repo, noopUserRepo())

	// The requester cannot accept their own request, and an unrelated user
	// cannot accept either. Both read as not-found, never as forbidden.
	for _, caller := range []uint{10, 12} {
		_, err := svc.Accept(context.Background(), caller, 5)
		assertAppErrorCode(t, err, "NOT_FOUND")
	}
}

func TestConnectionServiceAcceptNonPending(t *testing.T) {
	repo := noopConnRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.Connection, error) {
		return &models.Connection{ID: 5, RequesterID: 10, RecipientID: 11, Status: models.ConnectionStatusAccepted}, nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	_, err := svc.Accept(context.Background(), 11, 5)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestConnectionServiceAcceptByRecipient(t *testing.T) {
	var updatedTo models.ConnectionStatus
	repo := noopConnRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.Connection, error) {
		return &models.Connection{ID: 5, RequesterID: 10, RecipientID: 11, Status: models.ConnectionStatusPending}, nil
	}
	repo.updateStatusFn = func(_ context.Context, id uint, status models.ConnectionStatus) error {
		if id != 5 {
			t.Fatalf("expected update on connection 5, got %d", id)
		}
		updatedTo = status
		return nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	conn, err := svc.Accept(context.Background(), 11, 5)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if conn.Status != models.ConnectionStatusAccepted || updatedTo != models.ConnectionStatusAccepted {
		t.Fatalf("expected accepted status, got %s (stored %s)", conn.Status, updatedTo)
	}
}

func TestConnectionServiceRejectKeepsRow(t *testing.T) {
	deleted := false
	repo := noopConnRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.Connection, error) {
		return &models.Connection{ID: 5, RequesterID: 10, RecipientID: 11, Status: models.ConnectionStatusPending}, nil
	}
	repo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	conn, err := svc.Reject(context.Background(), 11, 5)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if conn.Status != models.ConnectionStatusRejected {
		t.Fatalf("expected rejected status, got %s", conn.Status)
	}
	if deleted {
		t.Fatal("reject must keep the row, not delete it")
	}
}

func TestConnectionServiceRemoveByEitherParty(t *testing.T) {
	for _, caller := range []uint{10, 11} {
		repo := noopConnRepo()
		repo.getByIDFn = func(context.Context, uint) (*models.Connection, error) {
			return &models.Connection{ID: 5, RequesterID: 10, RecipientID: 11, Status: models.ConnectionStatusAccepted}, nil
		}

		svc := NewConnectionService(repo, noopUserRepo())
		if err := svc.Remove(context.Background(), caller, 5); err != nil {
			t.Fatalf("remove as %d: %v", caller, err)
		}
	}
}

func TestConnectionServiceRemoveByOutsider(t *testing.T) {
	repo := noopConnRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.Connection, error) {
		return &models.Connection{ID: 5, RequesterID: 10, RecipientID: 11, Status: models.ConnectionStatusAccepted}, nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	err := svc.Remove(context.Background(), 12, 5)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestConnectionServiceSuggestionsCapped(t *testing.T) {
	var askedLimit int
	repo := noopConnRepo()
	repo.getSuggestionsFn = func(_ context.Context, _ uint, limit int) ([]models.User, error) {
		askedLimit = limit
		users := make([]models.User, limit)
		for i := range users {
			users[i] = models.User{ID: uint(i + 2), FirstName: "U", LastName: "ser"}
		}
		return users, nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	suggestions, err := svc.GetSuggestions(context.Background(), 1)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if askedLimit != 10 {
		t.Fatalf("expected limit 10, got %d", askedLimit)
	}
	if len(suggestions) != 10 {
		t.Fatalf("expected 10 suggestions, got %d", len(suggestions))
	}
}

func TestConnectionServiceGetConnectionsProjectsOtherSide(t *testing.T) {
	repo := noopConnRepo()
	repo.getAcceptedFn = func(context.Context, uint) ([]models.Connection, error) {
		return []models.Connection{
			{
				ID: 1, RequesterID: 7, RecipientID: 2,
				Requester: &models.User{ID: 7, FirstName: "Ada", LastName: "Lovelace"},
				Recipient: &models.User{ID: 2, FirstName: "Me", LastName: "Myself"},
				Status:    models.ConnectionStatusAccepted,
			},
			{
				ID: 2, RequesterID: 2, RecipientID: 9,
				Requester: &models.User{ID: 2, FirstName: "Me", LastName: "Myself"},
				Recipient: &models.User{ID: 9, FirstName: "Alan", LastName: "Turing"},
				Status:    models.ConnectionStatusAccepted,
			},
		}, nil
	}

	svc := NewConnectionService(repo, noopUserRepo())
	connected, err := svc.GetConnections(context.Background(), 2)
	if err != nil {
		t.Fatalf("connections: %v", err)
	}
	if len(connected) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(connected))
	}
	if connected[0].User.ID != 7 || connected[1].User.ID != 9 {
		t.Fatalf("expected other-side users 7 and 9, got %d and %d",
			connected[0].User.ID, connected[1].User.ID)
	}
}
