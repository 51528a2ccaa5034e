package usecase

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// PoolUseCase owns the one-time generation of the question pool
type PoolUseCase interface {
	// InitializePool generates and persists the pool unless one exists already.
	// The boolean reports whether a new pool was generated.
	InitializePool(ctx context.Context) (*entity.QuestionSet, bool, error)

	// GetQuestionSet returns the persisted pool with its ids and sessions
	GetQuestionSet(ctx context.Context) (*entity.QuestionSet, error)

	// GetPool returns the full pool in generation order
	GetPool(ctx context.Context) ([]entity.TransactionRecord, error)
}
