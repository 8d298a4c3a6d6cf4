package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gameshop-be/internal/cache"
	"gameshop-be/internal/config"
	"gameshop-be/internal/controllers"
	"gameshop-be/internal/database"
	"gameshop-be/internal/middleware"
	"gameshop-be/internal/password"
	"gameshop-be/internal/repository"
	"gameshop-be/internal/service"
	"gameshop-be/internal/session"
	"gameshop-be/internal/upload"
)

// maxBodyBytes caps request bodies; maxMultipartMemory caps the in-memory
// part of multipart parsing.
const (
	maxBodyBytes       = 10 << 20
	maxMultipartMemory = 8 << 20
	bootstrapTimeout   = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Sessions live in Redis, so the connection is mandatory
	cacheClient, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis session store")

	// Initialize repositories and core services
	userRepo := repository.NewUserRepository(db)
	hasher := password.NewBcryptHasher()
	sessions := session.NewManager(cacheClient)
	uploads := upload.NewStore(cfg.UploadDir)

	authService := service.NewAuthService(userRepo, hasher, sessions)
	userService := service.NewUserService(userRepo, hasher, cfg.BackendURL)

	// Bootstrap admin account; a failure here is logged, not fatal
	bootstrapCtx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	if err := userService.EnsureDefaultAdmin(bootstrapCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Error creating default admin: %v", err)
	}
	cancel()

	// Initialize controllers
	authController := controllers.NewAuthController(authService, uploads, cfg.IsProduction())
	userController := controllers.NewUserController(userService, uploads)

	// Create a Gin router
	router := gin.Default()
	router.MaxMultipartMemory = maxMultipartMemory
	router.Use(limitBodySize(maxBodyBytes))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// Liveness endpoint
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	// Uploaded avatars are served from the same directory they land in
	router.Static(upload.URLPrefix, cfg.UploadDir)

	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	// Protected routes - require a live session cookie
	authed := router.Group("")
	authed.Use(middleware.SessionAuth(sessions))
	{
		authed.GET("/me", userController.Me)
		authed.PUT("/user/profile", userController.UpdateProfile)
		authed.POST("/logout", authController.Logout)
		authed.GET("/admin/users", middleware.AdminOnly(), userController.ListUsers)
	}

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func limitBodySize(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
