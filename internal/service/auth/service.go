// Package auth implements account signup and credential verification.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// Service provides signup and login over a UserStore.
// Login is an acknowledgment only; no token or session state is created.
type Service struct {
	userStore store.UserStore
	hasher    PasswordHasher
	verifier  PasswordVerifier
	logger    *slog.Logger
}

// NewService creates an auth Service with the given dependencies.
func NewService(
	userStore store.UserStore,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With(slog.String("component", "auth_service")),
	}
}

// Signup hashes the password and stores a new user.
// Returns store.ErrEmailExists if the email is already taken and a
// domain validation error for missing or malformed fields.
func (s *Service) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrEmptyEmail
	}
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// Login verifies the supplied credentials against the stored hash.
// Both an unknown email and a non-verifying password return
// ErrInvalidCredentials; other store failures pass through.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrEmptyEmail
	}
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
