package jsonfile

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(openTestStore(t))
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u-1", Email: "a@b.com", Password: "x"}))

	user, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "x", user.Password)

	// Email comparison is exact
	_, err = repo.GetByEmail(ctx, "A@B.COM")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(openTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u-1", Email: "a@b.com", Password: "x"}))
	err := repo.Create(ctx, &entity.User{ID: "u-2", Email: "a@b.com", Password: "y"})
	assert.ErrorIs(t, err, errs.ErrDuplicateEmail)

	user, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID, "the first registration wins")
}

func TestUserRepository_ConcurrentRegistrationsKeepOneUserPerEmail(t *testing.T) {
	store := openTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@b.com", i%5)
			results <- repo.Create(ctx, &entity.User{ID: fmt.Sprintf("u-%d", i), Email: email, Password: "x"})
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	}
	assert.Equal(t, 5, succeeded)

	require.NoError(t, store.View(ctx, func(doc *Document) error {
		assert.Len(t, doc.Users, 5)
		return nil
	}))
}

func TestQuestionSetRepository_SaveOnce(t *testing.T) {
	repo := NewQuestionSetRepository(openTestStore(t))
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, errs.ErrPoolNotGenerated)

	generatedAt := time.Date(2025, 1, 2, 3, 4, 5, 6000000, time.UTC)
	set := &entity.QuestionSet{
		Pool: []entity.TransactionRecord{
			{ID: 1, Description: "Paid ₱1,000 cash for rent", Amount: 1000, Account: "Rent Expense",
				AccountType: entity.AccountTypeExpense, StatementCategory: entity.StatementIncomeStatement,
				Difficulty: entity.DifficultyEasy},
		},
		IDs:         []int{1},
		Sessions:    [][]int{{1}},
		GeneratedAt: generatedAt,
	}
	require.NoError(t, repo.Save(ctx, set))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, set.Pool, loaded.Pool)
	assert.Equal(t, set.Sessions, loaded.Sessions)
	assert.True(t, generatedAt.Equal(loaded.GeneratedAt))

	err = repo.Save(ctx, &entity.QuestionSet{IDs: []int{9}})
	assert.ErrorIs(t, err, errs.ErrPoolAlreadyExists)

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, again.IDs, "an existing set is never replaced")
}

func TestHistoryRepository_AppendAndList(t *testing.T) {
	repo := NewHistoryRepository(openTestStore(t))
	ctx := context.Background()

	records := []entity.HistoryRecord{
		{Email: "a@b.com", SessionNumber: 0, CorrectCount: 5, MaxCount: 10},
		{Email: "c@d.com", SessionNumber: 0, CorrectCount: 1, MaxCount: 10},
		{Email: "a@b.com", SessionNumber: 1, CorrectCount: 9, MaxCount: 10},
	}
	for i := range records {
		require.NoError(t, repo.Append(ctx, &records[i]))
	}

	listed, err := repo.ListByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, 0, listed[0].SessionNumber)
	assert.Equal(t, 1, listed[1].SessionNumber)

	none, err := repo.ListByEmail(ctx, "nobody@b.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
