package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

func openTestDB(t *testing.T) {
	t.Helper()
	err := database.Open(database.Config{Path: t.TempDir() + "/test.db"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
}

func createTestUser(t *testing.T, email, password string) *models.User {
	t.Helper()

	hash, err := HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		Role:         models.RoleEmployee,
	}
	require.NoError(t, database.NewUserRepo().Create(user))
	return user
}

func TestLogin_Success(t *testing.T) {
	openTestDB(t)
	createTestUser(t, "a@b.com", "correctpw")

	svc := NewService("test-secret", time.Hour)

	resp, err := svc.Login(LoginRequest{Email: "a@b.com", Password: "correctpw"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "a@b.com", resp.User.Email)

	claims, err := ParseToken(resp.Token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	openTestDB(t)
	createTestUser(t, "a@b.com", "correctpw")

	svc := NewService("test-secret", time.Hour)

	resp, err := svc.Login(LoginRequest{Email: "A@B.COM", Password: "correctpw"})
	require.NoError(t, err)
	require.Equal(t, "a@b.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	openTestDB(t)
	createTestUser(t, "a@b.com", "correctpw")

	svc := NewService("test-secret", time.Hour)

	resp, err := svc.Login(LoginRequest{Email: "a@b.com", Password: "wrongpw"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Nil(t, resp)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	openTestDB(t)
	createTestUser(t, "a@b.com", "correctpw")

	svc := NewService("test-secret", time.Hour)

	// Unknown account and wrong password are indistinguishable
	_, unknownErr := svc.Login(LoginRequest{Email: "nobody@b.com", Password: "x"})
	_, wrongErr := svc.Login(LoginRequest{Email: "a@b.com", Password: "x"})
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	openTestDB(t)

	svc := NewService("test-secret", time.Hour)

	_, err := svc.Login(LoginRequest{})
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestValidateToken_Roundtrip(t *testing.T) {
	openTestDB(t)
	user := createTestUser(t, "a@b.com", "correctpw")

	svc := NewService("test-secret", time.Hour)

	resp, err := svc.Login(LoginRequest{Email: "a@b.com", Password: "correctpw"})
	require.NoError(t, err)

	got, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	openTestDB(t)
	createTestUser(t, "a@b.com", "correctpw")

	svc := NewService("test-secret", -1*time.Second)

	resp, err := svc.Login(LoginRequest{Email: "a@b.com", Password: "correctpw"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	require.Error(t, err)
}
