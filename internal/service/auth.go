// Package service contains the business logic layer.
//
// Handlers parse HTTP and write responses; services enforce the rules and
// orchestrate; repositories talk to the database. Services accept plain
// values and return domain errors — no *http.Request, no status codes —
// so the same logic is callable from a CLI or a job without change.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/formbot/internal/apperror"
	"github.com/sakif/formbot/internal/auth"
	"github.com/sakif/formbot/internal/model"
	"github.com/sakif/formbot/internal/repository"
)

// AuthService handles signup, login, and principal lookup.
//
// DEPENDENCIES (injected via NewAuthService):
//   - users     repository.UserRepository → read/write user records
//   - tokens    *auth.TokenService        → issue/validate JWTs
//   - passwords *auth.PasswordService     → bcrypt hashing
//   - logger    *slog.Logger              → structured logging
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// Signup registers a new account and returns a bearer token for it.
//
// The email must be unused — the repository reports apperror.ErrConflict
// for a duplicate, and no second record is created. The password is never
// stored; only its bcrypt hash is.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return "", apperror.ValidationFailed("username", "username is required")
	}
	if email == "" {
		return "", apperror.ValidationFailed("email", "email is required")
	}
	if password == "" {
		return "", apperror.ValidationFailed("password", "password is required")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return "", fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("service/auth: creating user (email=%s): %w", email, err)
	}

	s.logger.Info("user signed up",
		slog.String("userID", user.ID),
		slog.String("username", user.Username),
	)

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return token, nil
}

// Login verifies credentials and returns a fresh bearer token.
//
// An unknown email answers "user not found" and a wrong password answers
// "invalid credentials" — distinct messages, both mapping to 400. The
// frontend displays them verbatim, so the wording is load-bearing.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Only a missing account maps to the 400 "user not found"
		// message. A database failure is not the client's fault and
		// must surface as a 500.
		if errors.Is(err, apperror.ErrNotFound) {
			return "", apperror.ValidationFailed("email", "user not found")
		}
		return "", fmt.Errorf("service/auth: fetching user by email %s: %w", email, err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		s.logger.Warn("login rejected",
			slog.String("userID", user.ID),
		)
		return "", apperror.ValidationFailed("password", "invalid credentials")
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return token, nil
}

// Username resolves the authenticated principal's username. The userID
// comes from a validated token's subject claim.
func (s *AuthService) Username(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", apperror.ValidationFailed("userID", "user ID is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("service/auth: fetching user %s: %w", userID, err)
	}

	return user.Username, nil
}
