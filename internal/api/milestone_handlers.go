package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// listMilestonesHandler handles GET /api/milestones: the session employee's
// milestones
func listMilestonesHandler(c echo.Context) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	milestones, err := milestoneRepo.ListByEmployee(employee.ID)
	if err != nil {
		return serverError(c, "list milestones error", err)
	}
	if milestones == nil {
		milestones = []*models.Milestone{}
	}

	return c.JSON(http.StatusOK, milestones)
}

// createMilestoneHandler handles POST /api/milestones
func createMilestoneHandler(c echo.Context) error {
	var req models.CreateMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" || req.AchievedAt.IsZero() {
		return message(c, http.StatusBadRequest, "Title and achievement date are required")
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	milestone := &models.Milestone{
		EmployeeID: employee.ID,
		Title:      req.Title,
		AchievedAt: req.AchievedAt,
	}

	if err := milestoneRepo.Create(milestone); err != nil {
		return serverError(c, "create milestone error", err)
	}

	created, err := milestoneRepo.GetByID(milestone.ID)
	if err != nil {
		return serverError(c, "create milestone error", err)
	}

	return c.JSON(http.StatusCreated, created)
}

// updateMilestoneVisibilityHandler handles PATCH /api/milestones/:id/visibility
func updateMilestoneVisibilityHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid milestone ID")
	}

	milestone, err := milestoneRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrMilestoneNotFound) {
			return message(c, http.StatusNotFound, "Milestone not found")
		}
		return serverError(c, "get milestone error", err)
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}
	if milestone.EmployeeID != employee.ID {
		return message(c, http.StatusForbidden, "Cannot modify another employee's milestone")
	}

	var req models.VisibilityRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := milestoneRepo.SetHidden(id, req.Hidden); err != nil {
		return serverError(c, "update milestone visibility error", err)
	}

	updated, err := milestoneRepo.GetByID(id)
	if err != nil {
		return serverError(c, "update milestone visibility error", err)
	}

	return c.JSON(http.StatusOK, updated)
}
