package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/logger"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxRetries:    attempts,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError_RecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
		calls++
		if calls < 3 {
			return errors.New("read: connection reset by peer")
		}
		return nil
	}, logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_PermanentErrorIsNotRetried(t *testing.T) {
	permanent := errors.New(`password authentication failed for user "studrev"`)
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
		calls++
		return permanent
	}, logger.NewNoopLogger())

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetryOnTransientError_GivesUp(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
		calls++
		return errors.New("dial tcp 127.0.0.1:5432: connection refused")
	}, logger.NewNoopLogger())

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	config := RetryConfig{MaxRetries: 5, RetryInterval: time.Hour, MaxInterval: time.Hour}

	calls := 0
	err := RetryOnTransientError(ctx, config, func() error {
		calls++
		cancel()
		return errors.New("i/o timeout")
	}, logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, config))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, config))

	config.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		backoff := calculateBackoffWithJitter(0, config)
		assert.GreaterOrEqual(t, backoff, 100*time.Millisecond)
		assert.LessOrEqual(t, backoff, 150*time.Millisecond)
	}
}
