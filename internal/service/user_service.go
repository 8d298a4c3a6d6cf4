package service

import (
	"context"
	"fmt"
	"log"

	"gameshop-be/internal/entities"
	"gameshop-be/internal/models"
	"gameshop-be/internal/password"
	"gameshop-be/internal/repository"
)

// walletBalance is a static demo value attached to every profile.
const walletBalance = 0.98

// defaultAvatarPath is the frontend asset served when no avatar was uploaded.
const defaultAvatarPath = "/assets/default-avatar.png"

// UserService defines the interface for profile and listing logic
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, name, email string, profileImage *string) error
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
	EnsureDefaultAdmin(ctx context.Context, email, plaintext string) error
}

type userService struct {
	users      repository.UserRepository
	hasher     password.Hasher
	backendURL string
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository, hasher password.Hasher, backendURL string) UserService {
	return &userService{
		users:      users,
		hasher:     hasher,
		backendURL: backendURL,
	}
}

// GetProfile returns the user's own profile with the wallet demo value and
// a resolved avatar URL.
func (s *userService) GetProfile(ctx context.Context, userID int64) (*models.ProfileResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profileImage := defaultAvatarPath
	if user.ProfileImage != nil {
		profileImage = s.backendURL + *user.ProfileImage
	}

	return &models.ProfileResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		ProfileImage:  profileImage,
		WalletBalance: walletBalance,
	}, nil
}

// UpdateProfile applies only the supplied fields; empty name/email and a
// nil profileImage leave the stored values untouched. Supplying nothing is
// a successful no-op.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, name, email string, profileImage *string) error {
	fields := map[string]string{}
	if name != "" {
		fields[repository.FieldName] = name
	}
	if email != "" {
		fields[repository.FieldEmail] = email
	}
	if profileImage != nil {
		fields[repository.FieldProfileImage] = *profileImage
	}

	return s.users.UpdatePartial(ctx, userID, fields)
}

// ListUsers returns every user without password hashes.
func (s *userService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.UserListItem, 0, len(users))
	for _, user := range users {
		items = append(items, models.UserListItem{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
			ProfileImage: user.ProfileImage,
		})
	}

	return items, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when no admin
// exists yet. Empty credentials disable the bootstrap entirely.
func (s *userService) EnsureDefaultAdmin(ctx context.Context, email, plaintext string) error {
	if email == "" || plaintext == "" {
		log.Println("Admin bootstrap disabled (no credentials configured)")
		return nil
	}

	count, err := s.users.CountByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		log.Println("Admin already exists")
		return nil
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return err
	}

	if _, err := s.users.Create(ctx, "Admin", email, hash, entities.RoleAdmin, nil); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Printf("Default admin created: %s", email)
	return nil
}
