package database

import (
	"database/sql"
	"errors"
	"time"

	"pulse-backend/internal/models"
)

var ErrEventNotFound = errors.New("event not found")

// EventRepo handles event and RSVP database operations
type EventRepo struct{}

// NewEventRepo creates a new event repository
func NewEventRepo() *EventRepo {
	return &EventRepo{}
}

// Create creates a new event
func (r *EventRepo) Create(e *models.Event) error {
	result, err := DB.Exec(`
		INSERT INTO events (title, description, location, starts_at, archived, created_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Title, e.Description, e.Location, e.StartsAt, e.Archived, e.CreatedBy)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepo) GetByID(id int64) (*models.Event, error) {
	e := &models.Event{}

	err := DB.QueryRow(`
		SELECT id, title, description, location, starts_at, archived, created_by, created_at
		FROM events WHERE id = ?
	`, id).Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt,
		&e.Archived, &e.CreatedBy, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	return e, nil
}

// GetWithRSVP retrieves an event annotated with one employee's RSVP status
func (r *EventRepo) GetWithRSVP(id, employeeID int64) (*models.EventWithRSVP, error) {
	event, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	out := &models.EventWithRSVP{Event: *event, RSVP: models.RSVPPending}

	var status models.RSVPStatus
	err = DB.QueryRow(
		"SELECT status FROM event_rsvps WHERE event_id = ? AND employee_id = ?",
		id, employeeID).Scan(&status)
	if err == nil {
		out.RSVP = status
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	return out, nil
}

// ListWithRSVP retrieves all events annotated with one employee's RSVP
// status, soonest first. Employees without a stored RSVP are pending.
func (r *EventRepo) ListWithRSVP(employeeID int64) ([]*models.EventWithRSVP, error) {
	rows, err := DB.Query(`
		SELECT e.id, e.title, e.description, e.location, e.starts_at, e.archived,
		       e.created_by, e.created_at, COALESCE(r.status, 'pending')
		FROM events e
		LEFT JOIN event_rsvps r ON r.event_id = e.id AND r.employee_id = ?
		ORDER BY e.starts_at
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.EventWithRSVP
	for rows.Next() {
		e := &models.EventWithRSVP{}
		err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt,
			&e.Archived, &e.CreatedBy, &e.CreatedAt, &e.RSVP)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// SetRSVP stores an employee's RSVP for an event
func (r *EventRepo) SetRSVP(eventID, employeeID int64, status models.RSVPStatus) error {
	_, err := DB.Exec(`
		INSERT INTO event_rsvps (event_id, employee_id, status, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(event_id, employee_id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at
	`, eventID, employeeID, status, time.Now())
	return err
}

// SetArchived sets an event's archived flag
func (r *EventRepo) SetArchived(id int64, archived bool) error {
	result, err := DB.Exec("UPDATE events SET archived = ? WHERE id = ?", archived, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEventNotFound
	}

	return nil
}
