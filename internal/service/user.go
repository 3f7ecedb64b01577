// Package service contains the business logic layer.
//
// Services take primitives and context, return models and domain errors, and
// know nothing about HTTP. Handlers translate requests in and errors out;
// repositories handle SQL. The wiring happens once, in internal/server.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/notes-backend/internal/apperror"
	"github.com/sakif/notes-backend/internal/auth"
	"github.com/sakif/notes-backend/internal/model"
	"github.com/sakif/notes-backend/internal/repository"
)

// UserService handles sign-up, sign-in and profile operations.
type UserService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewUserService creates a UserService with its dependencies injected.
func NewUserService(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// normalizeEmail is the single place email case/whitespace policy lives.
// Lower-casing before storage and lookup makes the UNIQUE index on email
// effectively case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a new account and returns the created user. The returned
// user is safe to serialize — the hash field never encodes.
//
// The email pre-check gives duplicate sign-ups a clean UserExists error in
// the common case, but it is advisory only: two concurrent sign-ups can both
// pass it. The UNIQUE index underneath decides the race, and the losing
// insert surfaces as the same UserExists error.
func (s *UserService) SignUp(ctx context.Context, email, username, password string) (*model.User, error) {
	email = normalizeEmail(email)
	username = strings.TrimSpace(username)

	if email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}
	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}
	// bcrypt's input limit; auth.Hash would reject it anyway, but catching
	// it here keeps the client-facing error a clean validation failure.
	if len(password) > 72 {
		return nil, apperror.ValidationFailed("password", "password must be 72 bytes or fewer")
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperror.UserExists(email)
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking email availability: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrUserExists) {
			// Lost the race against a concurrent sign-up.
			return nil, err
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user signed up",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// SignIn authenticates an email/password pair and returns the user.
//
// An unknown email and a wrong password both return the identical
// InvalidCredentials error — the response must not reveal which check
// failed. bcrypt's comparison is constant-time, so neither does timing on
// the hash itself.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.InvalidCredentials()
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.InvalidCredentials()
	}

	s.logger.Info("user signed in", slog.String("userID", user.ID))

	return user, nil
}

// GetProfile returns the user for the given ID, or NotFound. The original
// backend silently returned an empty body for unknown IDs; a missing user is
// now an explicit 404.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperror.ValidationFailed("uid", "user ID is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the username (the only client-mutable user field)
// and returns the updated record, hash stripped like every other user
// response.
func (s *UserService) UpdateProfile(ctx context.Context, userID, username string) (*model.User, error) {
	userID = strings.TrimSpace(userID)
	username = strings.TrimSpace(username)

	if userID == "" {
		return nil, apperror.ValidationFailed("uid", "user ID is required")
	}
	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}

	if err := s.users.UpdateUsername(ctx, userID, username); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("re-reading updated user %s: %w", userID, err)
	}

	s.logger.Info("user profile updated", slog.String("userID", userID))

	return user, nil
}
