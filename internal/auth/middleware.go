package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pulse-backend/internal/models"
)

// Context key for storing the authenticated user
const ContextKeyUser = "user"

// RequireAuth middleware checks for a valid session token. Every rejection
// is a uniform 401 regardless of whether the token is missing, malformed,
// badly signed, or expired.
func RequireAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := GetTokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Authentication required",
				})
			}

			user, err := authSvc.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Authentication required",
				})
			}

			c.Set(ContextKeyUser, user)

			return next(c)
		}
	}
}

// RequireManager middleware checks for manager or admin role.
// Must be used after RequireAuth.
func RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetUserFromContext(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Authentication required",
				})
			}

			if !user.IsManager() {
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": "Insufficient permissions",
				})
			}

			return next(c)
		}
	}
}

// GetTokenFromRequest extracts the session token from the request
func GetTokenFromRequest(c echo.Context) string {
	// Authorization header (Bearer token)
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Query parameter (used by the websocket stream, which cannot set headers)
	if token := c.QueryParam("token"); token != "" {
		return token
	}

	return ""
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}
