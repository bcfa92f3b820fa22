package models

import "time"

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskIncomplete TaskStatus = "incomplete"
	TaskCompleted  TaskStatus = "completed"
	TaskArchived   TaskStatus = "archived"
)

// ValidTaskStatus reports whether s is a known task status
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskIncomplete, TaskCompleted, TaskArchived:
		return true
	}
	return false
}

// Task represents a task assigned to an employee
type Task struct {
	ID          int64      `json:"id"`
	EmployeeID  int64      `json:"employee_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents the request body for updating a task
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskStatusRequest represents the request body for a status toggle
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status"`
}
