package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/models"
)

// teamReportHandler handles GET /api/reports/team (managers only):
// per-member engagement counters for the manager's direct reports.
func teamReportHandler(c echo.Context) error {
	me, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	reports, err := reportRepo.TeamReport(me.ID)
	if err != nil {
		return serverError(c, "team report error", err)
	}
	if reports == nil {
		reports = []*models.TeamMemberReport{}
	}

	return c.JSON(http.StatusOK, reports)
}
