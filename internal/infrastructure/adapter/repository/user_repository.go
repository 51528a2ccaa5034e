package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/model"
)

var _ persistence.UserRepository = (*UserRepository)(nil)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  database.NewErrorMapper(),
	}
}

// GetByEmail retrieves a user by exact email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).Take(&userModel)
	if result.Error != nil {
		return nil, r.errorMapper.MapError(result.Error, database.EntityTypeUser)
	}

	return &entity.User{
		ID:       userModel.ID,
		Email:    userModel.Email,
		Password: userModel.Password,
	}, nil
}

// Create inserts a user; the unique email index rejects duplicates
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:        user.ID,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: r.timeProvider.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		mapped := r.errorMapper.MapError(err, database.EntityTypeUser)
		r.logger.Warn("Failed to create user", map[string]any{
			"user_id": user.ID,
			"error":   mapped.Error(),
		})
		return mapped
	}

	r.logger.Debug("User created successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}
