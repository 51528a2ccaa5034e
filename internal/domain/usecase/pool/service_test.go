package pool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/studrev/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/studrev/mocks/port/persistence"
)

var fixedNow = time.Date(2025, 3, 1, 9, 30, 0, 123456789, time.FixedZone("PHT", 8*3600))

func newTestService(t *testing.T, repo *persistencemocks.MockQuestionSetRepository) *Service {
	t.Helper()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedNow).Maybe()
	timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Duration(0)).Maybe()

	service, err := NewService(repo, newPCGSource(3), timeProvider, logger, DefaultSessionSize)
	require.NoError(t, err)
	return service
}

func TestNewService_RejectsInvalidSessionSize(t *testing.T) {
	service, err := NewService(nil, nil, nil, nil, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidSessionSize)
	assert.Nil(t, service)
}

func TestService_InitializePool_FreshStore(t *testing.T) {
	repo := persistencemocks.NewMockQuestionSetRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(nil, errs.ErrPoolNotGenerated).Once()

	var saved *entity.QuestionSet
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, set *entity.QuestionSet) error {
			saved = set
			return nil
		}).Once()

	service := newTestService(t, repo)
	set, created, err := service.InitializePool(context.Background())

	require.NoError(t, err)
	assert.True(t, created)
	assert.Same(t, saved, set)

	assert.Len(t, set.Pool, PoolSize)
	assert.Len(t, set.IDs, PoolSize)
	assert.Equal(t, 5, set.SessionCount())
	assert.Equal(t, sequence(100), set.Sessions[0])
	assert.Equal(t, sequence(PoolSize), set.IDs)
	assert.Equal(t, fixedNow.UTC().Truncate(time.Millisecond), set.GeneratedAt)
	assert.Equal(t, time.UTC, set.GeneratedAt.Location())
}

func TestService_InitializePool_ReusesExistingSet(t *testing.T) {
	existing := &entity.QuestionSet{
		Pool:        []entity.TransactionRecord{{ID: 1, Description: "Paid ₱500 cash for rent"}},
		IDs:         []int{1},
		Sessions:    [][]int{{1}},
		GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	repo := persistencemocks.NewMockQuestionSetRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(existing, nil).Once()
	// Save must never be called: the mock fails the test on unexpected calls

	service := newTestService(t, repo)
	set, created, err := service.InitializePool(context.Background())

	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, existing, set)
	assert.Equal(t, existing.GeneratedAt, set.GeneratedAt)
}

func TestService_InitializePool_ConcurrentSaveReloads(t *testing.T) {
	stored := &entity.QuestionSet{IDs: []int{1}, Sessions: [][]int{{1}}}

	repo := persistencemocks.NewMockQuestionSetRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(nil, errs.ErrPoolNotGenerated).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errs.ErrPoolAlreadyExists).Once()
	repo.EXPECT().Load(mock.Anything).Return(stored, nil).Once()

	service := newTestService(t, repo)
	set, created, err := service.InitializePool(context.Background())

	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, stored, set)
}

func TestService_InitializePool_StoreFailures(t *testing.T) {
	ioErr := errs.NewStoreError("read", "/data/db.json", errors.New("disk full"))

	testCases := []struct {
		name      string
		mockSetup func(repo *persistencemocks.MockQuestionSetRepository)
	}{
		{
			name: "load fails",
			mockSetup: func(repo *persistencemocks.MockQuestionSetRepository) {
				repo.EXPECT().Load(mock.Anything).Return(nil, ioErr)
			},
		},
		{
			name: "save fails",
			mockSetup: func(repo *persistencemocks.MockQuestionSetRepository) {
				repo.EXPECT().Load(mock.Anything).Return(nil, errs.ErrPoolNotGenerated)
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(ioErr)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := persistencemocks.NewMockQuestionSetRepository(t)
			tc.mockSetup(repo)

			service := newTestService(t, repo)
			set, created, err := service.InitializePool(context.Background())

			assert.ErrorIs(t, err, errs.ErrStoreIO)
			assert.False(t, created)
			assert.Nil(t, set)
		})
	}
}

func TestService_GetPool_UsesCacheAfterInitialize(t *testing.T) {
	repo := persistencemocks.NewMockQuestionSetRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(nil, errs.ErrPoolNotGenerated).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	service := newTestService(t, repo)
	set, _, err := service.InitializePool(context.Background())
	require.NoError(t, err)

	pool, err := service.GetPool(context.Background())
	require.NoError(t, err)
	assert.Equal(t, set.Pool, pool)
}

func TestService_GetQuestionSet_LoadsWhenNotCached(t *testing.T) {
	stored := &entity.QuestionSet{IDs: []int{1}, Sessions: [][]int{{1}}}

	repo := persistencemocks.NewMockQuestionSetRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(stored, nil).Once()

	service := newTestService(t, repo)

	first, err := service.GetQuestionSet(context.Background())
	require.NoError(t, err)
	second, err := service.GetQuestionSet(context.Background())
	require.NoError(t, err)

	assert.Same(t, stored, first)
	assert.Same(t, stored, second)
}

func TestService_GetPool_NotGenerated(t *testing.T) {
	repo := persistencemocks.NewMockQuestionSetRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(nil, errs.ErrPoolNotGenerated)

	service := newTestService(t, repo)
	pool, err := service.GetPool(context.Background())

	assert.ErrorIs(t, err, errs.ErrPoolNotGenerated)
	assert.Nil(t, pool)
}
