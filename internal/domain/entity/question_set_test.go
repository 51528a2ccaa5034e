package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestionSet() *QuestionSet {
	pool := make([]TransactionRecord, 0, 5)
	for id := 1; id <= 5; id++ {
		pool = append(pool, TransactionRecord{ID: id, Account: "Cash", AccountType: AccountTypeAsset})
	}
	return &QuestionSet{
		Pool:     pool,
		IDs:      []int{1, 2, 3, 4, 5},
		Sessions: [][]int{{1, 2}, {3, 4}, {5}},
	}
}

func TestQuestionSetSessionItems(t *testing.T) {
	set := sampleQuestionSet()

	t.Run("Resolves ids in session order", func(t *testing.T) {
		items, err := set.SessionItems(1)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 3, items[0].ID)
		assert.Equal(t, 4, items[1].ID)
	})

	t.Run("Short last session", func(t *testing.T) {
		items, err := set.SessionItems(2)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].ID)
	})

	t.Run("Out of range", func(t *testing.T) {
		for _, n := range []int{-1, 3, 100} {
			items, err := set.SessionItems(n)
			assert.ErrorIs(t, err, errs.ErrInvalidSessionIndex, "session %d", n)
			assert.Nil(t, items)
		}
	})

	t.Run("Dangling id", func(t *testing.T) {
		broken := sampleQuestionSet()
		broken.Sessions = [][]int{{1, 99}}

		_, err := broken.SessionItems(0)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestQuestionSetSessionCount(t *testing.T) {
	set := sampleQuestionSet()

	assert.Equal(t, 3, set.SessionCount())
	assert.True(t, set.HasSession(0))
	assert.True(t, set.HasSession(2))
	assert.False(t, set.HasSession(3))
	assert.False(t, set.HasSession(-1))
}
