package service

import (
	"context"
	"errors"
	"fmt"

	"gameshop-be/internal/entities"
	"gameshop-be/internal/password"
	"gameshop-be/internal/repository"
	"gameshop-be/internal/session"
)

// ErrIncorrectPassword is returned when the password does not match the
// stored hash.
var ErrIncorrectPassword = errors.New("incorrect password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, plaintext string, profileImage *string) error
	Login(ctx context.Context, email, plaintext string) (*entities.User, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	hasher   password.Hasher
	sessions *session.Manager
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, hasher password.Hasher, sessions *session.Manager) AuthService {
	return &authService{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Register creates a new user account with the "user" role.
func (s *authService) Register(ctx context.Context, name, email, plaintext string, profileImage *string) error {
	// Pre-check for a friendlier error; the UNIQUE constraint still decides
	// races between concurrent registrations.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return err
	}

	if _, err := s.users.Create(ctx, name, email, hash, entities.RoleUser, profileImage); err != nil {
		return err
	}

	return nil
}

// Login verifies the credentials and opens a session. It returns the user
// and the session token to set as a cookie.
func (s *authService) Login(ctx context.Context, email, plaintext string) (*entities.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, "", ErrIncorrectPassword
	}

	token, err := s.sessions.Create(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout destroys the session for the given token.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
