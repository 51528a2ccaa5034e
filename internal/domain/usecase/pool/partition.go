package pool

import (
	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
)

// DefaultSessionSize is the number of ids delivered per session
const DefaultSessionSize = 100

// Partition splits ids into contiguous batches of size; only the last may be shorter.
// Concatenating the result reproduces ids exactly.
func Partition(ids []int, size int) ([][]int, error) {
	if size <= 0 {
		return nil, errs.ErrInvalidSessionSize
	}

	sessions := make([][]int, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		session := make([]int, end-start)
		copy(session, ids[start:end])
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// RecordIDs returns the ids of records in their generation order
func RecordIDs(records []entity.TransactionRecord) []int {
	ids := make([]int, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}
	return ids
}
