package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// listTasksHandler handles GET /api/tasks: the session employee's tasks
func listTasksHandler(c echo.Context) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	tasks, err := taskRepo.ListByEmployee(employee.ID)
	if err != nil {
		return serverError(c, "list tasks error", err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

// createTaskHandler handles POST /api/tasks
func createTaskHandler(c echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" {
		return message(c, http.StatusBadRequest, "Title is required")
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	task := &models.Task{
		EmployeeID:  employee.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskIncomplete,
		DueDate:     req.DueDate,
	}

	if err := taskRepo.Create(task); err != nil {
		return serverError(c, "create task error", err)
	}

	// Re-read so timestamps reflect stored values
	created, err := taskRepo.GetByID(task.ID)
	if err != nil {
		return serverError(c, "create task error", err)
	}

	return c.JSON(http.StatusCreated, created)
}

// getOwnedTask loads a task and enforces that it belongs to the session
// employee. Returns nil and writes the response on failure.
func getOwnedTask(c echo.Context) (*models.Task, error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return nil, message(c, http.StatusBadRequest, "Invalid task ID")
	}

	task, err := taskRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrTaskNotFound) {
			return nil, message(c, http.StatusNotFound, "Task not found")
		}
		return nil, serverError(c, "get task error", err)
	}

	employee, err := currentEmployee(c)
	if err != nil {
		return nil, serverError(c, "resolve employee error", err)
	}
	if task.EmployeeID != employee.ID {
		return nil, message(c, http.StatusForbidden, "Cannot modify another employee's task")
	}

	return task, nil
}

// updateTaskHandler handles PUT /api/tasks/:id
func updateTaskHandler(c echo.Context) error {
	task, errResp := getOwnedTask(c)
	if task == nil {
		return errResp
	}

	var req models.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Title != nil {
		if *req.Title == "" {
			return message(c, http.StatusBadRequest, "Title cannot be empty")
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := taskRepo.Update(task); err != nil {
		return serverError(c, "update task error", err)
	}

	return c.JSON(http.StatusOK, task)
}

// updateTaskStatusHandler handles PATCH /api/tasks/:id/status
func updateTaskStatusHandler(c echo.Context) error {
	task, errResp := getOwnedTask(c)
	if task == nil {
		return errResp
	}

	var req models.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if !models.ValidTaskStatus(req.Status) {
		return message(c, http.StatusBadRequest, "Invalid task status")
	}

	if err := taskRepo.UpdateStatus(task.ID, req.Status); err != nil {
		return serverError(c, "update task status error", err)
	}

	updated, err := taskRepo.GetByID(task.ID)
	if err != nil {
		return serverError(c, "update task status error", err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deleteTaskHandler handles DELETE /api/tasks/:id
func deleteTaskHandler(c echo.Context) error {
	task, errResp := getOwnedTask(c)
	if task == nil {
		return errResp
	}

	if err := taskRepo.Delete(task.ID); err != nil {
		return serverError(c, "delete task error", err)
	}

	return message(c, http.StatusOK, "Task deleted")
}
