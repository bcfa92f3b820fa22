package models

// TeamMemberReport aggregates engagement counters for one team member
type TeamMemberReport struct {
	EmployeeID     int64  `json:"employee_id"`
	Name           string `json:"name"`
	TasksCompleted int    `json:"tasks_completed"`
	TasksOpen      int    `json:"tasks_open"`
	EventsAccepted int    `json:"events_accepted"`
	BadgesEarned   int    `json:"badges_earned"`
	Milestones     int    `json:"milestones"`
}
