package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func registerUserRoutes(app *fiber.App, s *Server) {
	app.Get("/api/users", s.GetUsers)
	app.Get("/api/users/:id/profile", s.GetProfile)
	app.Put("/api/users/:id/profile", s.UpdateProfile)
	app.Get("/api/users/:id/posts", s.GetUserPosts)
	app.Post("/api/users/:id/follow", s.FollowUser)
	app.Delete("/api/users/:id/follow", s.UnfollowUser)
	app.Get("/api/users/:id", s.GetUser)
	app.Put("/api/users/:id", s.UpdateUser)
	app.Delete("/api/users/:id", s.DeleteUser)
}

func TestFollowUnfollowFlow(t *testing.T) {
	t.Parallel()
	s, db, _ := newTestServer(t)
	alice := createTestUser(t, db, "Alice", "Archer", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "Baker", "bob@example.com")

	app := newTestApp(alice.ID)
	registerUserRoutes(app, s)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", bob.ID), nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for follow, got %d", resp.StatusCode)
	}

	// Following twice is a conflict.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", bob.ID), nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for double follow, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/users/%d/follow", bob.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for unfollow, got %d", resp.StatusCode)
	}

	// Unfollowing without a follow is not-found.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/users/%d/follow", bob.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unfollow without follow, got %d", resp.StatusCode)
	}
}

func TestUserUpdateSelfOnly(t *testing.T) {
	t.Parallel()
	s, db, _ := newTestServer(t)
	alice := createTestUser(t, db, "Alice", "Archer", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "Baker", "bob@example.com")

	app := newTestApp(alice.ID)
	registerUserRoutes(app, s)

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d", bob.ID), fiber.Map{
		"headline": "hijacked",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 editing another user, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d", alice.ID), fiber.Map{
		"headline": "Distributed systems",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 editing self, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp)["data"].(map[string]interface{})["headline"]; got != "Distributed systems" {
		t.Fatalf("expected updated headline, got %v", got)
	}
}

func TestUserEmailChangeUniqueness(t *testing.T) {
	t.Parallel()
	s, db, _ := newTestServer(t)
	alice := createTestUser(t, db, "Alice", "Archer", "alice@example.com")
	createTestUser(t, db, "Bob", "Baker", "bob@example.com")

	app := newTestApp(alice.ID)
	registerUserRoutes(app, s)

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d", alice.ID), fiber.Map{
		"email": "bob@example.com",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for taken email, got %d", resp.StatusCode)
	}
}

func TestProfileCreatedOnFirstWrite(t *testing.T) {
	t.Parallel()
	s, db, _ := newTestServer(t)
	alice := createTestUser(t, db, "Alice", "Archer", "alice@example.com")

	app := newTestApp(alice.ID)
	registerUserRoutes(app, s)

	// No profile exists yet.
	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/profile", alice.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing profile, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d/profile", alice.ID), fiber.Map{
		"about":  "I build backends.",
		"skills": []string{"Go", "PostgreSQL"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for first profile write, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/profile", alice.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after upsert, got %d", resp.StatusCode)
	}
	data := decodeBody(t, resp)["data"].(map[string]interface{})
	if data["about"] != "I build backends." {
		t.Fatalf("expected about persisted, got %v", data["about"])
	}

	// Second write updates in place without another row.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d/profile", alice.ID), fiber.Map{
		"about": "I build distributed backends.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for second write, got %d", resp.StatusCode)
	}
}

func TestProfileRejectsInvalidAvatarURL(t *testing.T) {
	t.Parallel()
	s, db, _ := newTestServer(t)
	alice := createTestUser(t, db, "Alice", "Archer", "alice@example.com")

	app := newTestApp(alice.ID)
	registerUserRoutes(app, s)

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d/profile", alice.ID), fiber.Map{
		"avatar": "not a url",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad avatar url, got %d", resp.StatusCode)
	}
}

func TestDeleteUserKeepsContent(t *testing.T) {
	t.Parallel()
	s, db, _ := newTestServer(t)
	alice := createTestUser(t, db, "Alice", "Archer", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "Baker", "bob@example.com")

	aliceApp := newTestApp(alice.ID)
	registerUserRoutes(aliceApp, s)
	registerPostRoutes(aliceApp, s)

	resp := doJSON(t, aliceApp, http.MethodPost, "/api/posts", fiber.Map{
		"text":    "outlives the account",
		"privacy": "public",
	})
	postID := uint(decodeBody(t, resp)["data"].(map[string]interface{})["id"].(float64))

	resp = doJSON(t, aliceApp, http.MethodDelete, fmt.Sprintf("/api/users/%d", alice.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for self delete, got %d", resp.StatusCode)
	}

	bobApp := newTestApp(bob.ID)
	registerPostRoutes(bobApp, s)
	resp = doJSON(t, bobApp, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected post to survive account deletion, got %d", resp.StatusCode)
	}
}
