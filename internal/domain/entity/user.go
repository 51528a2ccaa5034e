package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
)

// User is a registered quiz taker. Users are created once and never mutated.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"` // stored form, see core.PasswordHasher
}

// NewUser creates a user with an already-hashed (or plaintext) stored password
func NewUser(id, email, storedPassword string) (*User, error) {
	email = NormalizeEmail(email)
	if id == "" || email == "" || storedPassword == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		ID:       id,
		Email:    email,
		Password: storedPassword,
	}, nil
}

// NormalizeEmail trims surrounding whitespace; emails are otherwise compared exactly
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
