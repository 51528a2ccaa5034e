package persistence

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// HistoryRepository records session completions
type HistoryRepository interface {
	// Append adds a completion record
	//
	// Possible errors:
	// - ErrStoreIO / ErrDatabaseConnection: If the backing store fails
	Append(ctx context.Context, record *entity.HistoryRecord) error

	// ListByEmail returns a user's completions in the order they were appended
	// An unknown email yields an empty slice, not an error
	ListByEmail(ctx context.Context, email string) ([]entity.HistoryRecord, error)
}
