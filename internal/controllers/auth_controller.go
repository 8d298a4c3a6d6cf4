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
	"gameshop-be/internal/session"
	"gameshop-be/internal/upload"
)

// profileImageField is the multipart field carrying the optional avatar.
const profileImageField = "profile_image"

type AuthController struct {
	authService service.AuthService
	uploads     *upload.Store
	production  bool
}

func NewAuthController(authService service.AuthService, uploads *upload.Store, production bool) *AuthController {
	return &AuthController{
		authService: authService,
		uploads:     uploads,
		production:  production,
	}
}

// Register handles POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	var profileImage *string
	if fh, err := c.FormFile(profileImageField); err == nil {
		path, err := ac.uploads.SaveMultipart(fh)
		if err != nil {
			log.Printf("Failed to store upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		profileImage = &path
	}

	err := ac.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, profileImage)
	if errors.Is(err, repository.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		return
	}
	if err != nil {
		log.Printf("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	user, token, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		return
	}
	if errors.Is(err, service.ErrIncorrectPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Incorrect password"})
		return
	}
	if err != nil {
		log.Printf("Failed to log in user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ac.setSessionCookie(c, token, int(session.TTL.Seconds()))
	c.JSON(http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Role:    user.Role,
		ID:      user.ID,
		Name:    user.Name,
	})
}

// Logout handles POST /logout
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextSessionToken)

	if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
		log.Printf("Failed to destroy session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed"})
		return
	}

	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// setSessionCookie writes the HTTP-only session cookie. Production gets
// Secure + SameSite=None for the cross-origin frontend; development relaxes
// both so plain-HTTP local setups keep working.
func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if ac.production {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", ac.production, true)
}
