package domain

import (
	"context"
	"time"
)

// RoleAdmin grants content management and moderation capabilities.
const RoleAdmin = "ADMIN"

// User represents a user entity in the system.
// A user can register, login, like articles and write comments.
type User struct {
	ID        int64     // Unique identifier
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	Roles     []string  // Role labels, e.g. "USER", "ADMIN"
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// HasRole reports whether the user carries the given role label.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict when the username is already taken.
	Insert(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account with the default "USER" role.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, username, password string) (User, error)

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, username, password string) (string, error)
}
