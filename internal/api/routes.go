package api

import (
	"github.com/labstack/echo/v4"

	"pulse-backend/internal/auth"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api *echo.Group, authSvc *auth.Service) {
	InitRepos()

	// Store authSvc for use in handlers
	authService = authSvc

	// Health check (public)
	api.GET("/health", healthCheck)

	// Auth routes (public - no auth required for login)
	api.POST("/login", loginHandler, auth.LoginRateLimiter.Middleware())
	api.POST("/logout", logoutHandler)

	// Everything below requires a valid session token
	protected := api.Group("")
	protected.Use(auth.RequireAuth(authSvc))

	protected.GET("/me", getCurrentUser)

	// Employee directory
	employees := protected.Group("/employees")
	employees.GET("", listEmployeesHandler)
	employees.GET("/:id", getEmployeeHandler)
	employees.PUT("/:id", updateEmployeeHandler)
	employees.GET("/:id/badges", listEmployeeBadgesHandler)

	// Tasks (scoped to the session employee)
	tasks := protected.Group("/tasks")
	tasks.GET("", listTasksHandler)
	tasks.POST("", createTaskHandler)
	tasks.PUT("/:id", updateTaskHandler)
	tasks.PATCH("/:id/status", updateTaskStatusHandler)
	tasks.DELETE("/:id", deleteTaskHandler)

	// Events and RSVPs
	events := protected.Group("/events")
	events.GET("", listEventsHandler)
	events.GET("/:id", getEventHandler)
	events.POST("", createEventHandler, auth.RequireManager())
	events.PUT("/:id/rsvp", rsvpHandler)
	events.PATCH("/:id/archive", archiveEventHandler, auth.RequireManager())

	// Social feed
	posts := protected.Group("/posts")
	posts.GET("", listPostsHandler)
	posts.POST("", createPostHandler)
	posts.PATCH("/:id/visibility", updatePostVisibilityHandler)
	posts.DELETE("/:id", deletePostHandler)

	// Badges and awards
	badges := protected.Group("/badges")
	badges.GET("", listBadgesHandler)
	badges.POST("", createBadgeHandler, auth.RequireManager())
	badges.PATCH("/:id/archive", archiveBadgeHandler, auth.RequireManager())
	badges.POST("/:id/award", awardBadgeHandler, auth.RequireManager())

	// Milestones
	milestones := protected.Group("/milestones")
	milestones.GET("", listMilestonesHandler)
	milestones.POST("", createMilestoneHandler)
	milestones.PATCH("/:id/visibility", updateMilestoneVisibilityHandler)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.GET("", listNotificationsHandler)
	notifications.PATCH("/:id/read", markNotificationReadHandler)
	notifications.GET("/stream", streamNotificationsHandler)

	// Manager reports
	protected.GET("/reports/team", teamReportHandler, auth.RequireManager())
}
