package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// listBadgesHandler handles GET /api/badges
func listBadgesHandler(c echo.Context) error {
	badges, err := badgeRepo.List()
	if err != nil {
		return serverError(c, "list badges error", err)
	}
	if badges == nil {
		badges = []*models.Badge{}
	}

	return c.JSON(http.StatusOK, badges)
}

// createBadgeHandler handles POST /api/badges (managers only)
func createBadgeHandler(c echo.Context) error {
	var req models.CreateBadgeRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" {
		return message(c, http.StatusBadRequest, "Name is required")
	}

	badge := &models.Badge{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := badgeRepo.Create(badge); err != nil {
		return serverError(c, "create badge error", err)
	}

	created, err := badgeRepo.GetByID(badge.ID)
	if err != nil {
		return serverError(c, "create badge error", err)
	}

	return c.JSON(http.StatusCreated, created)
}

// archiveBadgeHandler handles PATCH /api/badges/:id/archive (managers only)
func archiveBadgeHandler(c echo.Context) error {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	id := c.Param("id")
	if err := badgeRepo.SetArchived(id, req.Archived); err != nil {
		if errors.Is(err, database.ErrBadgeNotFound) {
			return message(c, http.StatusNotFound, "Badge not found")
		}
		return serverError(c, "archive badge error", err)
	}

	updated, err := badgeRepo.GetByID(id)
	if err != nil {
		return serverError(c, "archive badge error", err)
	}

	return c.JSON(http.StatusOK, updated)
}

// awardBadgeHandler handles POST /api/badges/:id/award (managers only).
// The recipient is notified.
func awardBadgeHandler(c echo.Context) error {
	var req models.AwardBadgeRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	badge, err := badgeRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrBadgeNotFound) {
			return message(c, http.StatusNotFound, "Badge not found")
		}
		return serverError(c, "get badge error", err)
	}

	if _, err := employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, database.ErrEmployeeNotFound) {
			return message(c, http.StatusNotFound, "Employee not found")
		}
		return serverError(c, "get employee error", err)
	}

	user := auth.GetUserFromContext(c)

	award, err := badgeRepo.Award(badge.ID, req.EmployeeID, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrBadgeAlreadyAwarded) {
			return message(c, http.StatusConflict, "Badge already awarded to this employee")
		}
		return serverError(c, "award badge error", err)
	}

	n := &models.Notification{
		EmployeeID: req.EmployeeID,
		Message:    "You earned the badge " + badge.Name,
	}
	if err := notificationRepo.Create(n); err != nil {
		c.Logger().Error("notify award error: ", err)
	} else {
		Stream.Publish(n)
	}

	return c.JSON(http.StatusCreated, award)
}

// listEmployeeBadgesHandler handles GET /api/employees/:id/badges
func listEmployeeBadgesHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid employee ID")
	}

	awards, err := badgeRepo.ListAwards(id)
	if err != nil {
		return serverError(c, "list awards error", err)
	}
	if awards == nil {
		awards = []*models.BadgeAward{}
	}

	return c.JSON(http.StatusOK, awards)
}
