package database

import (
	"database/sql"
	"errors"

	"pulse-backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepo handles notification database operations
type NotificationRepo struct{}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{}
}

// Create creates a new notification
func (r *NotificationRepo) Create(n *models.Notification) error {
	result, err := DB.Exec(`
		INSERT INTO notifications (employee_id, message, read)
		VALUES (?, ?, ?)
	`, n.EmployeeID, n.Message, n.Read)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = id

	// Round-trip so CreatedAt reflects the stored value
	stored, err := r.GetByID(id)
	if err == nil {
		n.CreatedAt = stored.CreatedAt
	}

	return nil
}

// GetByID retrieves a notification by ID
func (r *NotificationRepo) GetByID(id int64) (*models.Notification, error) {
	n := &models.Notification{}

	err := DB.QueryRow(`
		SELECT id, employee_id, message, read, created_at
		FROM notifications WHERE id = ?
	`, id).Scan(&n.ID, &n.EmployeeID, &n.Message, &n.Read, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}

	return n, nil
}

// ListByEmployee retrieves all notifications for an employee, newest first
func (r *NotificationRepo) ListByEmployee(employeeID int64) ([]*models.Notification, error) {
	rows, err := DB.Query(`
		SELECT id, employee_id, message, read, created_at
		FROM notifications WHERE employee_id = ?
		ORDER BY created_at DESC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(&n.ID, &n.EmployeeID, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead sets a notification's read flag
func (r *NotificationRepo) MarkRead(id int64, read bool) error {
	result, err := DB.Exec("UPDATE notifications SET read = ? WHERE id = ?", read, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
