package jsonfile

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
)

var _ persistence.UserRepository = (*UserRepository)(nil)

// UserRepository keeps users in the document's users array
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetByEmail returns the first user with exactly this email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var found *entity.User
	err := r.store.View(ctx, func(doc *Document) error {
		if i := indexByEmail(doc.Users, email); i >= 0 {
			user := doc.Users[i]
			found = &user
			return nil
		}
		return errs.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create appends user, rejecting an email that is already present
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.Update(ctx, func(doc *Document) error {
		if indexByEmail(doc.Users, user.Email) >= 0 {
			return errs.ErrDuplicateEmail
		}
		doc.Users = append(doc.Users, *user)
		return nil
	})
}

func indexByEmail(users []entity.User, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}
