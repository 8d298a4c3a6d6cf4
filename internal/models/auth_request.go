package models

// RegisterRequest represents the multipart form body for user registration.
// The optional profile_image file part is read separately by the controller.
type RegisterRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the multipart form body for profile
// updates. Every field is optional; absent fields are left untouched.
type UpdateProfileRequest struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}
