package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pulse-backend/internal/api"
	"pulse-backend/internal/auth"
	"pulse-backend/internal/config"
	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

func main() {
	cfg := config.Load()

	// Initialize database
	log.Printf("Initializing database at %s", cfg.DBPath)
	if err := database.Open(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Create default admin user if no users exist
	if err := createDefaultAdminIfNeeded(); err != nil {
		log.Printf("Warning: failed to create default admin: %v", err)
	}

	// Initialize auth service
	authSvc := auth.NewService(cfg.SecretKey, cfg.TokenValidity)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// API routes
	apiGroup := e.Group("/api")
	api.RegisterRoutes(apiGroup, authSvc)

	log.Printf("Starting Pulse backend on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// createDefaultAdminIfNeeded creates a default admin account if no users
// exist, along with its employee profile.
func createDefaultAdminIfNeeded() error {
	userRepo := database.NewUserRepo()

	count, err := userRepo.Count()
	if err != nil {
		return err
	}

	if count > 0 {
		return nil // Users already exist
	}

	log.Println("Creating default admin user (admin@pulse.local/admin) - CHANGE THIS PASSWORD!")

	passwordHash, err := auth.HashPassword("admin")
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        "admin@pulse.local",
		Name:         "Administrator",
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}

	if err := userRepo.Create(admin); err != nil {
		return err
	}

	employeeRepo := database.NewEmployeeRepo()
	return employeeRepo.Create(&models.Employee{
		UserID: admin.ID,
		Name:   admin.Name,
		Email:  admin.Email,
	})
}
