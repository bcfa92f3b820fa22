package models

import "time"

// Badge represents an achievement badge employees can earn
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
}

// BadgeAward records a badge granted to an employee
type BadgeAward struct {
	BadgeID    string    `json:"badge_id"`
	BadgeName  string    `json:"badge_name,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	AwardedBy  int64     `json:"awarded_by"`
	AwardedAt  time.Time `json:"awarded_at"`
}

// CreateBadgeRequest represents the request body for creating a badge
type CreateBadgeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AwardBadgeRequest represents the request body for awarding a badge
type AwardBadgeRequest struct {
	EmployeeID int64 `json:"employee_id"`
}
