package persistence

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByEmail retrieves a user by exact email
	// Used by login, registration duplicate checks, and session completion
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrStoreIO / ErrDatabaseConnection: If the backing store fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create appends a new user
	// Used for POST /api/register
	//
	// Possible errors:
	// - ErrDuplicateEmail: If a user with the same email already exists
	// - ErrStoreIO / ErrDatabaseConnection: If the backing store fails
	Create(ctx context.Context, user *entity.User) error
}
