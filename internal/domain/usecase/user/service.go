package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/usecase"
)

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// UserUseCase handles registration and login
type UserUseCase struct {
	userRepo persistence.UserRepository
	hasher   coreport.PasswordHasher
	logger   coreport.Logger
	newID    func() string
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Register creates a user unless the email is already taken
func (u *UserUseCase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, errs.ErrInvalidRequest
	}

	_, err := u.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errs.ErrDuplicateEmail
	case !errors.Is(err, errs.ErrUserNotFound):
		return nil, fmt.Errorf("look up user: %w", err)
	}

	stored, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := entity.NewUser(u.newID(), email, stored)
	if err != nil {
		return nil, err
	}

	// Create re-checks uniqueness under the store lock
	if err := u.userRepo.Create(ctx, user); err != nil {
		if !errs.IsDuplicateEmailError(err) {
			u.logger.Error("Failed to create user", map[string]any{
				"email": email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"email":  email,
	})

	return user, nil
}

// Login returns the user whose stored password matches
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if !u.hasher.Matches(user.Password, password) {
		u.logger.Debug("Login rejected", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return user, nil
}
