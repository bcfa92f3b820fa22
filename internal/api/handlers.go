package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// Package-level repositories, initialized in RegisterRoutes after the
// database is ready.
var (
	authService      *auth.Service
	userRepo         *database.UserRepo
	employeeRepo     *database.EmployeeRepo
	taskRepo         *database.TaskRepo
	eventRepo        *database.EventRepo
	postRepo         *database.PostRepo
	badgeRepo        *database.BadgeRepo
	milestoneRepo    *database.MilestoneRepo
	notificationRepo *database.NotificationRepo
	reportRepo       *database.ReportRepo
)

// InitRepos initializes the repositories (call after database is ready)
func InitRepos() {
	userRepo = database.NewUserRepo()
	employeeRepo = database.NewEmployeeRepo()
	taskRepo = database.NewTaskRepo()
	eventRepo = database.NewEventRepo()
	postRepo = database.NewPostRepo()
	badgeRepo = database.NewBadgeRepo()
	milestoneRepo = database.NewMilestoneRepo()
	notificationRepo = database.NewNotificationRepo()
	reportRepo = database.NewReportRepo()
}

// Health check
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// currentEmployee resolves the employee profile of the authenticated user
func currentEmployee(c echo.Context) (*models.Employee, error) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return employeeRepo.GetByUserID(user.ID)
}

// message is the uniform error/status response body
func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

// serverError logs the underlying error and returns a generic 500. Internal
// details never reach the client.
func serverError(c echo.Context, context string, err error) error {
	c.Logger().Error(context+": ", err)
	return message(c, http.StatusInternalServerError, "Server error")
}
