package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/auth"
)

// loginHandler handles POST /api/login
func loginHandler(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return message(c, http.StatusBadRequest, "Please provide email and password")
	}

	resp, err := authService.Login(req)
	if err != nil {
		// Unknown email and wrong password are deliberately
		// indistinguishable here.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return message(c, http.StatusBadRequest, "Invalid credentials")
		}
		return serverError(c, "login error", err)
	}

	auth.LoginRateLimiter.RecordSuccess(c.RealIP())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Login successful",
		"token":      resp.Token,
		"user":       resp.User,
		"expires_at": resp.ExpiresAt,
	})
}

// logoutHandler handles POST /api/logout. Tokens are stateless and expire on
// their own; logout is the client discarding its session, so this endpoint
// only acknowledges.
func logoutHandler(c echo.Context) error {
	return message(c, http.StatusOK, "Logged out")
}

// getCurrentUser handles GET /api/me
func getCurrentUser(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return message(c, http.StatusUnauthorized, "Authentication required")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user.Profile(),
	})
}
