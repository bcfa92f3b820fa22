package models

import "time"

// Milestone represents a personal milestone on an employee's timeline
type Milestone struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Title      string    `json:"title"`
	AchievedAt time.Time `json:"achieved_at"`
	Hidden     bool      `json:"hidden"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateMilestoneRequest represents the request body for creating a milestone
type CreateMilestoneRequest struct {
	Title      string    `json:"title"`
	AchievedAt time.Time `json:"achieved_at"`
}
