package jsonfile

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
)

var _ persistence.QuestionSetRepository = (*QuestionSetRepository)(nil)

// QuestionSetRepository stores the pool under the document's sets key
type QuestionSetRepository struct {
	store *Store
}

// NewQuestionSetRepository creates a new QuestionSetRepository
func NewQuestionSetRepository(store *Store) *QuestionSetRepository {
	return &QuestionSetRepository{store: store}
}

// Load returns the stored set or ErrPoolNotGenerated
func (r *QuestionSetRepository) Load(ctx context.Context) (*entity.QuestionSet, error) {
	var set *entity.QuestionSet
	err := r.store.View(ctx, func(doc *Document) error {
		if doc.Sets == nil {
			return errs.ErrPoolNotGenerated
		}
		set = doc.Sets
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Save writes set once; a second save fails with ErrPoolAlreadyExists
func (r *QuestionSetRepository) Save(ctx context.Context, set *entity.QuestionSet) error {
	return r.store.Update(ctx, func(doc *Document) error {
		if doc.Sets != nil {
			return errs.ErrPoolAlreadyExists
		}
		doc.Sets = set
		return nil
	})
}
