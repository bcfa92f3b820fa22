package models

import "time"

// Employee represents an employee profile linked to a login account
type Employee struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	Team        string    `json:"team"`
	ManagerID   *int64    `json:"manager_id,omitempty"`
	JoiningDate time.Time `json:"joining_date"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateEmployeeRequest represents the request body for updating an employee
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Team       *string `json:"team,omitempty"`
	ManagerID  *int64  `json:"manager_id,omitempty"`
	Archived   *bool   `json:"archived,omitempty"`
}
