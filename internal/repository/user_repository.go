package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"gameshop-be/internal/entities"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a write would duplicate an email.
	// The UNIQUE constraint on the table is the authority here, so two
	// concurrent inserts of the same email can never both succeed.
	ErrEmailTaken = errors.New("email already exists")
)

// Updatable column names accepted by UpdatePartial.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldProfileImage = "profile_image"
)

// updatableColumns fixes the clause order for partial updates.
var updatableColumns = []string{FieldName, FieldEmail, FieldProfileImage}

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash, role string, profileImage *string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	UpdatePartial(ctx context.Context, id int64, fields map[string]string) error
	List(ctx context.Context) ([]entities.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, name, email, passwordHash, role string, profileImage *string) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, profile_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		ProfileImage: profileImage,
	}
	err := r.db.QueryRowContext(ctx, query, name, email, passwordHash, role, profileImage).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *userRepository) findOne(ctx context.Context, where string, arg interface{}) (*entities.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, profile_image, created_at, updated_at
		FROM users
		WHERE ` + where

	var user entities.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ProfileImage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// UpdatePartial applies only the supplied fields, keyed by column name.
// Unknown keys are ignored and an empty map is a no-op.
func (r *userRepository) UpdatePartial(ctx context.Context, id int64, fields map[string]string) error {
	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for _, col := range updatableColumns {
		val, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	_, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// List returns all users without their password hashes
func (r *userRepository) List(ctx context.Context) ([]entities.User, error) {
	query := `
		SELECT id, name, email, role, profile_image
		FROM users
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.ProfileImage); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// CountByRole counts users holding the given role
func (r *userRepository) CountByRole(ctx context.Context, role string) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
