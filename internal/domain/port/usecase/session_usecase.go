package usecase

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// CompletionRequest is a finished quiz round reported by a client
type CompletionRequest struct {
	Email   string
	Correct int
	Max     int
}

// SessionUseCase serves session batches and records their completion
type SessionUseCase interface {
	// GetSession returns the records of 0-based session n
	// Returns ErrInvalidSessionIndex when n is outside the partition
	GetSession(ctx context.Context, n int) ([]entity.TransactionRecord, error)

	// CompleteSession appends a history record for session n
	CompleteSession(ctx context.Context, n int, req CompletionRequest) (*entity.HistoryRecord, error)

	// GetHistory lists a user's completions
	GetHistory(ctx context.Context, email string) ([]entity.HistoryRecord, error)
}
