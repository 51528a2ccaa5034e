package persistence

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// QuestionSetRepository stores the generated pool and its session partition
type QuestionSetRepository interface {
	// Load returns the persisted question set
	//
	// Possible errors:
	// - ErrPoolNotGenerated: If no pool has been saved yet
	// - ErrStoreIO / ErrDatabaseConnection: If the backing store fails
	Load(ctx context.Context) (*entity.QuestionSet, error)

	// Save persists a freshly generated question set
	// A set is written at most once; it is never replaced
	//
	// Possible errors:
	// - ErrPoolAlreadyExists: If a set was saved before
	// - ErrStoreIO / ErrDatabaseConnection: If the backing store fails
	Save(ctx context.Context, set *entity.QuestionSet) error
}
