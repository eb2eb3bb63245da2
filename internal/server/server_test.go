package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"workwire/internal/config"
	"workwire/internal/database"
	"workwire/internal/repository"
	"workwire/internal/service"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workwire/internal/models"
)

// mailerStub captures outgoing mail instead of delivering it.
type mailerStub struct {
	sent []struct {
		To      string
		Subject string
		Body    string
	}
	failWith error
}

func (m *mailerStub) Send(to, subject, body string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, struct {
		To      string
		Subject string
		Body    string
	}{to, subject, body})
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer builds a Server on an in-memory database without touching
// Redis or Prometheus registration.
func newTestServer(t *testing.T) (*Server, *gorm.DB, *mailerStub) {
	t.Helper()
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	connRepo := repository.NewConnectionRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	chatRepo := repository.NewChatRepository(db)
	jobRepo := repository.NewJobRepository(db)

	mail := &mailerStub{}
	s := &Server{
		config: &config.Config{
			Port:           "0",
			Env:            "test",
			JWTSecret:      "test-secret-test-secret-test-secret",
			JWTExpireHours: 1,
		},
		db:          db,
		mailer:      mail,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		connRepo:    connRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		chatRepo:    chatRepo,
		jobRepo:     jobRepo,
	}
	s.userService = service.NewUserService(userRepo, profileRepo)
	s.connService = service.NewConnectionService(connRepo, userRepo)
	s.postService = service.NewPostService(postRepo, connRepo, commentRepo)
	s.messageService = service.NewMessageService(chatRepo, userRepo)
	s.jobService = service.NewJobService(jobRepo)

	return s, db, mail
}

// newTestApp returns a Fiber app that injects uid as the authenticated user.
func newTestApp(uid uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uid)
		return c.Next()
	})
	return app
}

func createTestUser(t *testing.T, db *gorm.DB, firstName, lastName, email string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	return doAuthJSON(t, app, method, path, "", body)
}

// doAuthJSON issues a request with a bearer token, for apps mounted through
// SetupRoutes where AuthRequired guards the protected groups.
func doAuthJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}
