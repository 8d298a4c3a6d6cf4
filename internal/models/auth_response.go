package models

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
}

// ProfileResponse represents the authenticated user's own profile.
// ProfileImage is always populated: either the absolute URL of the uploaded
// avatar or the frontend's default asset path.
type ProfileResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	ProfileImage  string  `json:"profile_image"`
	WalletBalance float64 `json:"walletBalance"`
}

// UserListItem represents one row of the admin user listing.
// The password hash is never part of the projection.
type UserListItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image"`
}
