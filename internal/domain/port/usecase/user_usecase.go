package usecase

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// UserUseCase defines registration and login
type UserUseCase interface {
	// Register creates a user; used by POST /api/register
	// Returns ErrDuplicateEmail when the email is taken
	Register(ctx context.Context, email, password string) (*entity.User, error)

	// Login checks credentials; used by POST /api/login
	// Returns ErrInvalidCredentials on unknown email or wrong password
	Login(ctx context.Context, email, password string) (*entity.User, error)
}
