package database

import (
	"database/sql"
	"errors"
	"time"

	"pulse-backend/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepo handles task database operations
type TaskRepo struct{}

// NewTaskRepo creates a new task repository
func NewTaskRepo() *TaskRepo {
	return &TaskRepo{}
}

const taskColumns = `id, employee_id, title, description, status, due_date, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	t := &models.Task{}
	var dueDate sql.NullTime

	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.Status,
		&dueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		t.DueDate = &dueDate.Time
	}

	return t, nil
}

// Create creates a new task
func (r *TaskRepo) Create(t *models.Task) error {
	var dueDate any
	if t.DueDate != nil {
		dueDate = *t.DueDate
	}

	if t.Status == "" {
		t.Status = models.TaskIncomplete
	}

	result, err := DB.Exec(`
		INSERT INTO tasks (employee_id, title, description, status, due_date)
		VALUES (?, ?, ?, ?, ?)
	`, t.EmployeeID, t.Title, t.Description, t.Status, dueDate)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id

	return nil
}

// GetByID retrieves a task by ID
func (r *TaskRepo) GetByID(id int64) (*models.Task, error) {
	t, err := scanTask(DB.QueryRow(
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListByEmployee retrieves all tasks for an employee, newest first
func (r *TaskRepo) ListByEmployee(employeeID int64) ([]*models.Task, error) {
	rows, err := DB.Query(
		"SELECT "+taskColumns+" FROM tasks WHERE employee_id = ? ORDER BY created_at DESC", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update updates a task's editable fields
func (r *TaskRepo) Update(t *models.Task) error {
	var dueDate any
	if t.DueDate != nil {
		dueDate = *t.DueDate
	}

	t.UpdatedAt = time.Now()

	result, err := DB.Exec(`
		UPDATE tasks SET
			title = ?,
			description = ?,
			due_date = ?,
			updated_at = ?
		WHERE id = ?
	`, t.Title, t.Description, dueDate, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// UpdateStatus sets a task's status
func (r *TaskRepo) UpdateStatus(id int64, status models.TaskStatus) error {
	result, err := DB.Exec(
		"UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete deletes a task
func (r *TaskRepo) Delete(id int64) error {
	result, err := DB.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}
