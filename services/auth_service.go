// services/auth_service.go
package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smarttravelhq/smart-travel-backend/models"
	"github.com/smarttravelhq/smart-travel-backend/repository"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// AuthService handles signup and login
type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(users *repository.UserRepository, jwtSecret string, ttlHours int) *AuthService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// Signup registers a new user. Passwords are stored as bcrypt hashes,
// never as plaintext.
func (s *AuthService) Signup(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return utils.NewValidationError(utils.ErrAllFieldsRequired)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewInternalError(utils.ErrInternal)
	}

	created, err := s.users.CreateUser(name, email, string(hash))
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !created {
		return utils.NewValidationError(utils.ErrEmailExists)
	}
	return nil
}

// Login verifies credentials and returns a signed session token. The same
// error comes back for an unknown email and a wrong password.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, utils.NewValidationError(utils.ErrAllFieldsRequired)
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if user == nil {
		return "", nil, utils.NewUnauthenticatedError(utils.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, utils.NewUnauthenticatedError(utils.ErrInvalidCredentials)
	}

	token, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Name, s.tokenTTL)
	if err != nil {
		return "", nil, utils.NewInternalError(utils.ErrInternal)
	}
	return token, user, nil
}
