package server

import (
	"fmt"
	"strconv"
	"time"

	"workwire/internal/models"
	"workwire/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL bounds how long a password reset link stays valid.
const resetTokenTTL = 10 * time.Minute

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Email     string `json:"email" validate:"required"`
		Password  string `json:"password" validate:"required"`
		Headline  string `json:"headline"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	if err := validation.ValidateName(req.FirstName); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateName(req.LastName); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, models.NewConflictError("User already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Headline:  req.Headline,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return models.RespondWithError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Me handles GET /api/auth/me
func (s *Server) Me(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), userID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, user)
}

// ForgotPassword handles POST /api/auth/forgot-password. The response does
// not reveal whether the address is registered.
func (s *Server) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email" validate:"required"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user != nil {
		token := uuid.New().String()
		exp := time.Now().Add(resetTokenTTL)
		user.ResetPasswordToken = token
		user.ResetPasswordExp = &exp
		if err := s.userRepo.Update(c.Context(), user); err != nil {
			return models.RespondWithError(c, err)
		}

		body := fmt.Sprintf("You requested a password reset.\n\nUse this token to reset your password: %s\n\nThe token expires in 10 minutes. If you did not request a reset, ignore this email.", token)
		if mailErr := s.mailer.Send(user.Email, "Password reset", body); mailErr != nil {
			// Clear the token if the mail never left so the flow can be
			// retried cleanly.
			user.ResetPasswordToken = ""
			user.ResetPasswordExp = nil
			_ = s.userRepo.Update(c.Context(), user)
			return models.RespondWithError(c, models.NewInternalError(mailErr))
		}
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{
		"message": "If that email is registered, a reset link has been sent",
	})
}

// ResetPassword handles PUT /api/auth/reset-password/:token
func (s *Server) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return models.RespondWithError(c, models.NewValidationError("Reset token is required"))
	}

	var req struct {
		Password string `json:"password" validate:"required"`
	}
	if err := s.bodyParse(c, &req); err != nil {
		return nil
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	user, err := s.userRepo.GetByResetToken(c.Context(), token)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil || user.ResetPasswordExp == nil || user.ResetPasswordExp.Before(time.Now()) {
		return models.RespondWithError(c, models.NewValidationError("Invalid or expired reset token"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	user.Password = string(hashed)
	user.ResetPasswordToken = ""
	user.ResetPasswordExp = nil
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, err)
	}

	jwtToken, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   jwtToken,
	})
}

// generateToken creates a signed JWT for the given user ID.
func (s *Server) generateToken(id uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	expire := time.Duration(s.config.JWTExpireHours) * time.Hour
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(id), 10),
		"iss": "workwire-api",
		"aud": "workwire-client",
		"exp": now.Add(expire).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
