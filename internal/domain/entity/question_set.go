package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
)

// QuestionSet is the persisted pool together with its session partition.
// It is written once per store lifetime and read-only afterwards.
type QuestionSet struct {
	Pool        []TransactionRecord `json:"pool"`
	IDs         []int               `json:"ids"`
	Sessions    [][]int             `json:"sessions"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// SessionCount returns how many sessions the pool was partitioned into
func (q *QuestionSet) SessionCount() int {
	return len(q.Sessions)
}

// HasSession reports whether n is a valid 0-based session number
func (q *QuestionSet) HasSession(n int) bool {
	return n >= 0 && n < len(q.Sessions)
}

// SessionItems resolves the ids of session n to their records, in session order
func (q *QuestionSet) SessionItems(n int) ([]TransactionRecord, error) {
	if !q.HasSession(n) {
		return nil, errs.ErrInvalidSessionIndex
	}

	byID := make(map[int]TransactionRecord, len(q.Pool))
	for _, record := range q.Pool {
		byID[record.ID] = record
	}

	ids := q.Sessions[n]
	items := make([]TransactionRecord, 0, len(ids))
	for _, id := range ids {
		record, ok := byID[id]
		if !ok {
			// A session referencing a missing record means the stored set is damaged
			return nil, errs.ErrInternalServer
		}
		items = append(items, record)
	}
	return items, nil
}
