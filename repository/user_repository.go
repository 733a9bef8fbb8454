// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/smarttravelhq/smart-travel-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new user. Returns false without error when the email
// is already taken (unique constraint); the insert is atomic either way.
func (r *UserRepository) CreateUser(name, email, passwordHash string) (bool, error) {
	_, err := r.DB.Exec(
		"INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)",
		name, email, passwordHash,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert user: %v", err)
	}
	return true, nil
}

// FindByEmail retrieves a user by email, or nil when no row matches.
// The stored credential is returned opaquely; verification happens in the
// auth service.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(
		"SELECT id, name, email, password_hash FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}
