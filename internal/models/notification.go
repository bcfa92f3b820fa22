package models

import "time"

// Notification represents a message delivered to an employee
type Notification struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
