package database

import (
	"database/sql"
	"errors"
	"time"

	"pulse-backend/internal/models"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepo handles employee database operations
type EmployeeRepo struct{}

// NewEmployeeRepo creates a new employee repository
func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{}
}

const employeeColumns = `id, user_id, name, email, department, team, manager_id, joining_date, archived, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (*models.Employee, error) {
	e := &models.Employee{}
	var managerID sql.NullInt64

	err := row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.Email, &e.Department, &e.Team,
		&managerID, &e.JoiningDate, &e.Archived, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if managerID.Valid {
		e.ManagerID = &managerID.Int64
	}

	return e, nil
}

// Create creates a new employee profile
func (r *EmployeeRepo) Create(e *models.Employee) error {
	var managerID any
	if e.ManagerID != nil {
		managerID = *e.ManagerID
	}

	joining := e.JoiningDate
	if joining.IsZero() {
		joining = time.Now()
	}

	result, err := DB.Exec(`
		INSERT INTO employees (user_id, name, email, department, team, manager_id, joining_date, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.UserID, e.Name, e.Email, e.Department, e.Team, managerID, joining, e.Archived)
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

// GetByID retrieves an employee by ID
func (r *EmployeeRepo) GetByID(id int64) (*models.Employee, error) {
	e, err := scanEmployee(DB.QueryRow(
		"SELECT "+employeeColumns+" FROM employees WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GetByUserID retrieves the employee profile linked to a login account
func (r *EmployeeRepo) GetByUserID(userID int64) (*models.Employee, error) {
	e, err := scanEmployee(DB.QueryRow(
		"SELECT "+employeeColumns+" FROM employees WHERE user_id = ?", userID))
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List retrieves all employees
func (r *EmployeeRepo) List() ([]*models.Employee, error) {
	return r.list("SELECT " + employeeColumns + " FROM employees ORDER BY name")
}

// ListByManager retrieves the direct reports of a manager
func (r *EmployeeRepo) ListByManager(managerID int64) ([]*models.Employee, error) {
	return r.list("SELECT "+employeeColumns+" FROM employees WHERE manager_id = ? ORDER BY name", managerID)
}

func (r *EmployeeRepo) list(query string, args ...any) ([]*models.Employee, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update updates an employee profile
func (r *EmployeeRepo) Update(e *models.Employee) error {
	var managerID any
	if e.ManagerID != nil {
		managerID = *e.ManagerID
	}

	e.UpdatedAt = time.Now()

	result, err := DB.Exec(`
		UPDATE employees SET
			name = ?,
			department = ?,
			team = ?,
			manager_id = ?,
			archived = ?,
			updated_at = ?
		WHERE id = ?
	`, e.Name, e.Department, e.Team, managerID, e.Archived, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
