package jsonfile

import (
	"context"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
)

var _ persistence.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository appends to the document's history array
type HistoryRepository struct {
	store *Store
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(store *Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// Append adds record at the end of the history
func (r *HistoryRepository) Append(ctx context.Context, record *entity.HistoryRecord) error {
	return r.store.Update(ctx, func(doc *Document) error {
		doc.History = append(doc.History, *record)
		return nil
	})
}

// ListByEmail filters the history by email, keeping append order
func (r *HistoryRepository) ListByEmail(ctx context.Context, email string) ([]entity.HistoryRecord, error) {
	records := []entity.HistoryRecord{}
	err := r.store.View(ctx, func(doc *Document) error {
		for _, record := range doc.History {
			if record.Email == email {
				records = append(records, record)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
