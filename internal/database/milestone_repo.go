package database

import (
	"database/sql"
	"errors"

	"pulse-backend/internal/models"
)

var ErrMilestoneNotFound = errors.New("milestone not found")

// MilestoneRepo handles milestone database operations
type MilestoneRepo struct{}

// NewMilestoneRepo creates a new milestone repository
func NewMilestoneRepo() *MilestoneRepo {
	return &MilestoneRepo{}
}

// Create creates a new milestone
func (r *MilestoneRepo) Create(m *models.Milestone) error {
	result, err := DB.Exec(`
		INSERT INTO milestones (employee_id, title, achieved_at, hidden)
		VALUES (?, ?, ?, ?)
	`, m.EmployeeID, m.Title, m.AchievedAt, m.Hidden)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}

// GetByID retrieves a milestone by ID
func (r *MilestoneRepo) GetByID(id int64) (*models.Milestone, error) {
	m := &models.Milestone{}

	err := DB.QueryRow(`
		SELECT id, employee_id, title, achieved_at, hidden, created_at
		FROM milestones WHERE id = ?
	`, id).Scan(&m.ID, &m.EmployeeID, &m.Title, &m.AchievedAt, &m.Hidden, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMilestoneNotFound
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ListByEmployee retrieves all milestones for an employee, newest first
func (r *MilestoneRepo) ListByEmployee(employeeID int64) ([]*models.Milestone, error) {
	rows, err := DB.Query(`
		SELECT id, employee_id, title, achieved_at, hidden, created_at
		FROM milestones WHERE employee_id = ?
		ORDER BY achieved_at DESC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []*models.Milestone
	for rows.Next() {
		m := &models.Milestone{}
		err := rows.Scan(&m.ID, &m.EmployeeID, &m.Title, &m.AchievedAt, &m.Hidden, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}

	return milestones, rows.Err()
}

// SetHidden sets a milestone's visibility flag
func (r *MilestoneRepo) SetHidden(id int64, hidden bool) error {
	result, err := DB.Exec("UPDATE milestones SET hidden = ? WHERE id = ?", hidden, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}
