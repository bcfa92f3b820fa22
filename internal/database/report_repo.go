package database

import (
	"pulse-backend/internal/models"
)

// ReportRepo aggregates engagement metrics for manager reports
type ReportRepo struct{}

// NewReportRepo creates a new report repository
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// TeamReport builds per-member engagement counters for the direct reports
// of the given manager.
func (r *ReportRepo) TeamReport(managerID int64) ([]*models.TeamMemberReport, error) {
	rows, err := DB.Query(`
		SELECT e.id, e.name,
			(SELECT COUNT(*) FROM tasks t WHERE t.employee_id = e.id AND t.status = 'completed'),
			(SELECT COUNT(*) FROM tasks t WHERE t.employee_id = e.id AND t.status = 'incomplete'),
			(SELECT COUNT(*) FROM event_rsvps rv WHERE rv.employee_id = e.id AND rv.status = 'accepted'),
			(SELECT COUNT(*) FROM badge_awards a WHERE a.employee_id = e.id),
			(SELECT COUNT(*) FROM milestones m WHERE m.employee_id = e.id)
		FROM employees e
		WHERE e.manager_id = ? AND e.archived = 0
		ORDER BY e.name
	`, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.TeamMemberReport
	for rows.Next() {
		rep := &models.TeamMemberReport{}
		err := rows.Scan(&rep.EmployeeID, &rep.Name, &rep.TasksCompleted,
			&rep.TasksOpen, &rep.EventsAccepted, &rep.BadgesEarned, &rep.Milestones)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}
