package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// listEventsHandler handles GET /api/events: all events annotated with the
// session employee's RSVP
func listEventsHandler(c echo.Context) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	events, err := eventRepo.ListWithRSVP(employee.ID)
	if err != nil {
		return serverError(c, "list events error", err)
	}
	if events == nil {
		events = []*models.EventWithRSVP{}
	}

	return c.JSON(http.StatusOK, events)
}

// getEventHandler handles GET /api/events/:id
func getEventHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid event ID")
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	event, err := eventRepo.GetWithRSVP(id, employee.ID)
	if err != nil {
		if errors.Is(err, database.ErrEventNotFound) {
			return message(c, http.StatusNotFound, "Event not found")
		}
		return serverError(c, "get event error", err)
	}

	return c.JSON(http.StatusOK, event)
}

// createEventHandler handles POST /api/events (managers only). Every active
// employee is notified.
func createEventHandler(c echo.Context) error {
	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" || req.StartsAt.IsZero() {
		return message(c, http.StatusBadRequest, "Title and start time are required")
	}

	user := auth.GetUserFromContext(c)

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		CreatedBy:   user.ID,
	}

	if err := eventRepo.Create(event); err != nil {
		return serverError(c, "create event error", err)
	}

	notifyEventCreated(c, event)

	created, err := eventRepo.GetByID(event.ID)
	if err != nil {
		return serverError(c, "create event error", err)
	}

	return c.JSON(http.StatusCreated, created)
}

// rsvpHandler handles PUT /api/events/:id/rsvp
func rsvpHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid event ID")
	}

	var req models.RSVPRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if !models.ValidRSVPStatus(req.Status) {
		return message(c, http.StatusBadRequest, "Invalid RSVP status")
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	if _, err := eventRepo.GetByID(id); err != nil {
		if errors.Is(err, database.ErrEventNotFound) {
			return message(c, http.StatusNotFound, "Event not found")
		}
		return serverError(c, "get event error", err)
	}

	if err := eventRepo.SetRSVP(id, employee.ID, req.Status); err != nil {
		return serverError(c, "set rsvp error", err)
	}

	updated, err := eventRepo.GetWithRSVP(id, employee.ID)
	if err != nil {
		return serverError(c, "set rsvp error", err)
	}

	return c.JSON(http.StatusOK, updated)
}

// archiveEventHandler handles PATCH /api/events/:id/archive (managers only)
func archiveEventHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid event ID")
	}

	var req struct {
		Archived bool `json:"archived"`
	}
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := eventRepo.SetArchived(id, req.Archived); err != nil {
		if errors.Is(err, database.ErrEventNotFound) {
			return message(c, http.StatusNotFound, "Event not found")
		}
		return serverError(c, "archive event error", err)
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	updated, err := eventRepo.GetWithRSVP(id, employee.ID)
	if err != nil {
		return serverError(c, "archive event error", err)
	}

	return c.JSON(http.StatusOK, updated)
}

// notifyEventCreated fans out a notification to every active employee
func notifyEventCreated(c echo.Context, event *models.Event) {
	employees, err := employeeRepo.List()
	if err != nil {
		c.Logger().Error("notify event error: ", err)
		return
	}

	for _, e := range employees {
		if e.Archived {
			continue
		}
		n := &models.Notification{
			EmployeeID: e.ID,
			Message:    "New event: " + event.Title,
		}
		if err := notificationRepo.Create(n); err != nil {
			c.Logger().Error("notify event error: ", err)
			continue
		}
		Stream.Publish(n)
	}
}
