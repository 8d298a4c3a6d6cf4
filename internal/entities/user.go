package entities

import "time"

// Roles a user row can carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user entity in the database
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	Role         string    `json:"role"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
