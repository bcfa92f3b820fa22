package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// listEmployeesHandler handles GET /api/employees. Managers get their direct
// reports; everyone else gets the active directory.
func listEmployeesHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	var (
		employees []*models.Employee
		err       error
	)

	if user.IsManager() {
		me, resolveErr := currentEmployee(c)
		if resolveErr != nil {
			return serverError(c, "resolve employee error", resolveErr)
		}
		employees, err = employeeRepo.ListByManager(me.ID)
	} else {
		employees, err = employeeRepo.List()
	}
	if err != nil {
		return serverError(c, "list employees error", err)
	}
	if employees == nil {
		employees = []*models.Employee{}
	}

	return c.JSON(http.StatusOK, employees)
}

// getEmployeeHandler handles GET /api/employees/:id
func getEmployeeHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid employee ID")
	}

	employee, err := employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrEmployeeNotFound) {
			return message(c, http.StatusNotFound, "Employee not found")
		}
		return serverError(c, "get employee error", err)
	}

	return c.JSON(http.StatusOK, employee)
}

// updateEmployeeHandler handles PUT /api/employees/:id. Employees may edit
// their own profile; managers may edit anyone's.
func updateEmployeeHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid employee ID")
	}

	employee, err := employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrEmployeeNotFound) {
			return message(c, http.StatusNotFound, "Employee not found")
		}
		return serverError(c, "get employee error", err)
	}

	user := auth.GetUserFromContext(c)
	if employee.UserID != user.ID && !user.IsManager() {
		return message(c, http.StatusForbidden, "Cannot modify another employee's profile")
	}

	var req models.UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return message(c, http.StatusBadRequest, "Name cannot be empty")
		}
		employee.Name = *req.Name
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Team != nil {
		employee.Team = *req.Team
	}
	if req.ManagerID != nil {
		employee.ManagerID = req.ManagerID
	}
	if req.Archived != nil {
		// Only managers may archive
		if !user.IsManager() {
			return message(c, http.StatusForbidden, "Only managers can archive employees")
		}
		employee.Archived = *req.Archived
	}

	if err := employeeRepo.Update(employee); err != nil {
		return serverError(c, "update employee error", err)
	}

	return c.JSON(http.StatusOK, employee)
}
