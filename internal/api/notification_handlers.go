package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// listNotificationsHandler handles GET /api/notifications
func listNotificationsHandler(c echo.Context) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	notifications, err := notificationRepo.ListByEmployee(employee.ID)
	if err != nil {
		return serverError(c, "list notifications error", err)
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}

	return c.JSON(http.StatusOK, notifications)
}

// markNotificationReadHandler handles PATCH /api/notifications/:id/read
func markNotificationReadHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid notification ID")
	}

	notification, err := notificationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotificationNotFound) {
			return message(c, http.StatusNotFound, "Notification not found")
		}
		return serverError(c, "get notification error", err)
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}
	if notification.EmployeeID != employee.ID {
		return message(c, http.StatusForbidden, "Cannot modify another employee's notification")
	}

	var req struct {
		Read bool `json:"read"`
	}
	req.Read = true
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := notificationRepo.MarkRead(id, req.Read); err != nil {
		return serverError(c, "mark notification error", err)
	}

	updated, err := notificationRepo.GetByID(id)
	if err != nil {
		return serverError(c, "mark notification error", err)
	}

	return c.JSON(http.StatusOK, updated)
}
