package service

import (
	"context"
	"testing"

	"workwire/internal/models"

	"github.com/stretchr/testify/require"
)

type profileRepoStub struct {
	getByUserIDFn func(context.Context, uint) (*models.Profile, error)
	createFn      func(context.Context, *models.Profile) error
	updateFn      func(context.Context, *models.Profile) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(context.Context, uint) (*models.Profile, error) {
			return nil, models.NewNotFoundError("Profile")
		},
		createFn: func(_ context.Context, profile *models.Profile) error {
			profile.ID = 1
			return nil
		},
		updateFn: func(context.Context, *models.Profile) error { return nil },
	}
}

func TestUserServiceUpdateRejectsInvalidEmail(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 3, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil
	}

	svc := NewUserService(users, noopProfileRepo())
	_, err := svc.UpdateUser(context.Background(), UpdateUserInput{UserID: 3, Email: "not-an-email"})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceUpdateEmailTaken(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 3, Email: "ada@example.com"}, nil
	}
	users.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 9, Email: "taken@example.com"}, nil
	}

	svc := NewUserService(users, noopProfileRepo())
	_, err := svc.UpdateUser(context.Background(), UpdateUserInput{UserID: 3, Email: "taken@example.com"})
	assertAppErrorCode(t, err, "CONFLICT")
}

func TestUserServiceUpdateLeavesEmptyFieldsUntouched(t *testing.T) {
	var saved *models.User
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 3, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Headline: "Analyst"}, nil
	}
	users.updateFn = func(_ context.Context, user *models.User) error {
		saved = user
		return nil
	}

	svc := NewUserService(users, noopProfileRepo())
	updated, err := svc.UpdateUser(context.Background(), UpdateUserInput{UserID: 3, Headline: "Programmer"})
	require.NoError(t, err)
	require.Equal(t, "Programmer", updated.Headline)
	require.Equal(t, "Ada", saved.FirstName)
	require.Equal(t, "ada@example.com", saved.Email)
}

func TestUserServiceUpsertProfileCreatesOnFirstWrite(t *testing.T) {
	created := 0
	profiles := noopProfileRepo()
	profiles.createFn = func(_ context.Context, profile *models.Profile) error {
		created++
		profile.ID = 1
		return nil
	}

	about := "Backend engineer"
	svc := NewUserService(noopUserRepo(), profiles)
	profile, err := svc.UpsertProfile(context.Background(), UpdateProfileInput{UserID: 3, About: &about})
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Equal(t, uint(3), profile.UserID)
	require.Equal(t, about, profile.About)
}

func TestUserServiceUpsertProfileUpdatesExisting(t *testing.T) {
	created := 0
	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		return &models.Profile{ID: 1, UserID: 3, About: "old", Skills: []string{"Go"}}, nil
	}
	profiles.createFn = func(context.Context, *models.Profile) error {
		created++
		return nil
	}

	about := "new"
	svc := NewUserService(noopUserRepo(), profiles)
	profile, err := svc.UpsertProfile(context.Background(), UpdateProfileInput{UserID: 3, About: &about})
	require.NoError(t, err)
	require.Zero(t, created)
	require.Equal(t, "new", profile.About)
	// Untouched fields survive the partial update.
	require.Equal(t, []string{"Go"}, profile.Skills)
}

func TestUserServiceUpsertProfileRejectsBadURL(t *testing.T) {
	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		return &models.Profile{ID: 1, UserID: 3}, nil
	}

	avatar := "not a url"
	svc := NewUserService(noopUserRepo(), profiles)
	_, err := svc.UpsertProfile(context.Background(), UpdateProfileInput{UserID: 3, Avatar: &avatar})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
