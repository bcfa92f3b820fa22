package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

// httptest requests all originate from 192.0.2.1, so the shared login
// limiter has to be reset between tests.
const testClientIP = "192.0.2.1"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	require.NoError(t, database.Open(database.Config{Path: t.TempDir() + "/test.db"}))
	t.Cleanup(func() { database.Close() })

	auth.LoginRateLimiter.RecordSuccess(testClientIP)

	e := echo.New()
	RegisterRoutes(e.Group("/api"), auth.NewService("test-secret", time.Hour))
	return e
}

func seedAccount(t *testing.T, email, password string, role models.Role) *models.Employee {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{Email: email, Name: "Test " + email, PasswordHash: hash, Role: role}
	require.NoError(t, database.NewUserRepo().Create(user))

	employee := &models.Employee{UserID: user.ID, Name: user.Name, Email: email}
	require.NoError(t, database.NewEmployeeRepo().Create(employee))
	return employee
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Token
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestLogin_Success(t *testing.T) {
	e := newTestServer(t)
	seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)

	rec := doJSON(e, http.MethodPost, "/api/login", "", map[string]string{
		"email": "a@b.com", "password": "correctpw",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Login successful", body.Message)
	require.NotEmpty(t, body.Token)
	require.Equal(t, "a@b.com", body.User.Email)
	require.WithinDuration(t, time.Now().Add(time.Hour), body.ExpiresAt, 5*time.Second)

	// Credential material never reaches a payload
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), "hash")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e := newTestServer(t)
	seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)

	wrongPw := doJSON(e, http.MethodPost, "/api/login", "", map[string]string{
		"email": "a@b.com", "password": "wrongpw",
	})
	require.Equal(t, http.StatusBadRequest, wrongPw.Code)
	require.Equal(t, "Invalid credentials", decodeMessage(t, wrongPw))

	// Unknown account gets the exact same response
	unknown := doJSON(e, http.MethodPost, "/api/login", "", map[string]string{
		"email": "nobody@b.com", "password": "wrongpw",
	})
	require.Equal(t, wrongPw.Code, unknown.Code)
	require.JSONEq(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/login", "", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Please provide email and password", decodeMessage(t, rec))
}

func TestLogin_RateLimited(t *testing.T) {
	e := newTestServer(t)
	seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)

	creds := map[string]string{"email": "a@b.com", "password": "wrongpw"}
	for i := 0; i < 5; i++ {
		rec := doJSON(e, http.MethodPost, "/api/login", "", creds)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/api/login", "", creds)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "Too many login attempts", decodeMessage(t, rec))
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	auth.LoginRateLimiter.RecordSuccess(testClientIP)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	e := newTestServer(t)

	missing := doJSON(e, http.MethodGet, "/api/tasks", "", nil)
	require.Equal(t, http.StatusUnauthorized, missing.Code)
	require.Equal(t, "Authentication required", decodeMessage(t, missing))

	// Malformed and missing tokens are indistinguishable
	garbage := doJSON(e, http.MethodGet, "/api/tasks", "not-a-token", nil)
	require.Equal(t, missing.Code, garbage.Code)
	require.JSONEq(t, missing.Body.String(), garbage.Body.String())
}

func TestMe(t *testing.T) {
	e := newTestServer(t)
	seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)
	token := loginToken(t, e, "a@b.com", "correctpw")

	rec := doJSON(e, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "a@b.com", body.User.Email)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestLogout_Acknowledges(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Logged out", decodeMessage(t, rec))
}

func TestTasks_CreateAndToggle(t *testing.T) {
	e := newTestServer(t)
	seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)
	token := loginToken(t, e, "a@b.com", "correctpw")

	created := doJSON(e, http.MethodPost, "/api/tasks", token, map[string]string{
		"title": "Write report",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &task))
	require.Equal(t, models.TaskIncomplete, task.Status)

	list := doJSON(e, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)

	toggled := doJSON(e, http.MethodPatch, "/api/tasks/1/status", token, map[string]string{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, toggled.Code)
	require.NoError(t, json.Unmarshal(toggled.Body.Bytes(), &task))
	require.Equal(t, models.TaskCompleted, task.Status)

	invalid := doJSON(e, http.MethodPatch, "/api/tasks/1/status", token, map[string]string{
		"status": "paused",
	})
	require.Equal(t, http.StatusBadRequest, invalid.Code)
	require.Equal(t, "Invalid task status", decodeMessage(t, invalid))
}

func TestTasks_OwnershipEnforced(t *testing.T) {
	e := newTestServer(t)
	owner := seedAccount(t, "owner@b.com", "correctpw", models.RoleEmployee)
	seedAccount(t, "other@b.com", "correctpw", models.RoleEmployee)

	task := &models.Task{EmployeeID: owner.ID, Title: "Private"}
	require.NoError(t, database.NewTaskRepo().Create(task))

	otherToken := loginToken(t, e, "other@b.com", "correctpw")

	rec := doJSON(e, http.MethodPatch, "/api/tasks/1/status", otherToken, map[string]string{
		"status": "completed",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	missing := doJSON(e, http.MethodPatch, "/api/tasks/999/status", otherToken, map[string]string{
		"status": "completed",
	})
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestEvents_CreateAndRSVP(t *testing.T) {
	e := newTestServer(t)
	seedAccount(t, "boss@b.com", "correctpw", models.RoleManager)
	employee := seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)

	bossToken := loginToken(t, e, "boss@b.com", "correctpw")
	empToken := loginToken(t, e, "a@b.com", "correctpw")

	// Only managers can create events
	denied := doJSON(e, http.MethodPost, "/api/events", empToken, map[string]any{
		"title": "Offsite", "starts_at": time.Now().Add(48 * time.Hour),
	})
	require.Equal(t, http.StatusForbidden, denied.Code)

	created := doJSON(e, http.MethodPost, "/api/events", bossToken, map[string]any{
		"title": "Offsite", "starts_at": time.Now().Add(48 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, created.Code)

	list := doJSON(e, http.MethodGet, "/api/events", empToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var events []models.EventWithRSVP
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &events))
	require.Len(t, events, 1)
	require.Equal(t, models.RSVPPending, events[0].RSVP)

	rsvp := doJSON(e, http.MethodPut, "/api/events/1/rsvp", empToken, map[string]string{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, rsvp.Code)
	var updated models.EventWithRSVP
	require.NoError(t, json.Unmarshal(rsvp.Body.Bytes(), &updated))
	require.Equal(t, models.RSVPAccepted, updated.RSVP)

	// Event creation notified the employee
	notifications, err := database.NewNotificationRepo().ListByEmployee(employee.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, "New event: Offsite", notifications[0].Message)
}

func TestBadges_AwardOnce(t *testing.T) {
	e := newTestServer(t)
	seedAccount(t, "boss@b.com", "correctpw", models.RoleManager)
	employee := seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)

	bossToken := loginToken(t, e, "boss@b.com", "correctpw")

	created := doJSON(e, http.MethodPost, "/api/badges", bossToken, map[string]string{
		"name": "Team Player",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var badge models.Badge
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &badge))

	award := doJSON(e, http.MethodPost, "/api/badges/"+badge.ID+"/award", bossToken, map[string]any{
		"employee_id": employee.ID,
	})
	require.Equal(t, http.StatusCreated, award.Code)

	duplicate := doJSON(e, http.MethodPost, "/api/badges/"+badge.ID+"/award", bossToken, map[string]any{
		"employee_id": employee.ID,
	})
	require.Equal(t, http.StatusConflict, duplicate.Code)

	notifications, err := database.NewNotificationRepo().ListByEmployee(employee.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, "You earned the badge Team Player", notifications[0].Message)
}

func TestReports_ManagerOnly(t *testing.T) {
	e := newTestServer(t)
	manager := seedAccount(t, "boss@b.com", "correctpw", models.RoleManager)
	report := seedAccount(t, "a@b.com", "correctpw", models.RoleEmployee)

	report.ManagerID = &manager.ID
	require.NoError(t, database.NewEmployeeRepo().Update(report))

	empToken := loginToken(t, e, "a@b.com", "correctpw")
	denied := doJSON(e, http.MethodGet, "/api/reports/team", empToken, nil)
	require.Equal(t, http.StatusForbidden, denied.Code)
	require.Equal(t, "Insufficient permissions", decodeMessage(t, denied))

	bossToken := loginToken(t, e, "boss@b.com", "correctpw")
	rec := doJSON(e, http.MethodGet, "/api/reports/team", bossToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []models.TeamMemberReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, report.ID, rows[0].EmployeeID)
}
