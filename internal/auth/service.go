package auth

import (
	"errors"
	"time"

	"pulse-backend/internal/database"
	"pulse-backend/internal/models"
)

var (
	ErrMissingCredentials = errors.New("missing email or password")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles authentication logic
type Service struct {
	userRepo      *database.UserRepo
	secretKey     []byte
	tokenValidity time.Duration
}

// NewService creates a new auth service
func NewService(secretKey string, tokenValidity time.Duration) *Service {
	return &Service{
		userRepo:      database.NewUserRepo(),
		secretKey:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User      models.Profile `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Login verifies an email/password pair and issues a session token.
// Unknown email and wrong password both yield ErrInvalidCredentials so the
// response does not reveal whether the account exists.
func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, user.Email, s.secretKey, s.tokenValidity)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:      user.Profile(),
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokenValidity),
	}, nil
}

// ValidateToken verifies a session token and returns the account it belongs to
func (s *Service) ValidateToken(token string) (*models.User, error) {
	claims, err := ParseToken(token, s.secretKey)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
