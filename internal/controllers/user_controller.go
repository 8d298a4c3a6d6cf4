package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gameshop-be/internal/middleware"
	"gameshop-be/internal/models"
	"gameshop-be/internal/repository"
	"gameshop-be/internal/service"
	"gameshop-be/internal/upload"
)

type UserController struct {
	userService service.UserService
	uploads     *upload.Store
}

func NewUserController(userService service.UserService, uploads *upload.Store) *UserController {
	return &UserController{
		userService: userService,
		uploads:     uploads,
	}
}

// Me handles GET /me
func (uc *UserController) Me(c *gin.Context) {
	userID := c.GetInt64(middleware.ContextUserID)

	profile, err := uc.userService.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		// The user row can be gone while the session still lives.
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to load profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /user/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(middleware.ContextUserID)

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	var profileImage *string
	if fh, err := c.FormFile(profileImageField); err == nil {
		path, err := uc.uploads.SaveMultipart(fh)
		if err != nil {
			log.Printf("Failed to store upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		profileImage = &path
	}

	if err := uc.userService.UpdateProfile(c.Request.Context(), userID, req.Name, req.Email, profileImage); err != nil {
		log.Printf("Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// ListUsers handles GET /admin/users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}
