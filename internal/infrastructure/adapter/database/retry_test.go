package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/querykicks/querykicks/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
		JitterFactor:  0,
	}
}

func TestRetryOnTransientErrorSucceedsAfterRetries(t *testing.T) {
	attempts := 0
	operation := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("could not serialize access due to concurrent update")
		}
		return nil
	}

	err := RetryOnTransientError(context.Background(), fastRetryConfig(), operation, logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryOnTransientErrorStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("syntax error at or near SELECT")
	attempts := 0
	operation := func() error {
		attempts++
		return permanent
	}

	err := RetryOnTransientError(context.Background(), fastRetryConfig(), operation, logger.NewNoopLogger())

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts, "permanent errors must not be retried")
}

func TestRetryOnTransientErrorExhaustsRetries(t *testing.T) {
	transient := errors.New("deadlock detected")
	attempts := 0
	operation := func() error {
		attempts++
		return transient
	}

	err := RetryOnTransientError(context.Background(), fastRetryConfig(), operation, logger.NewNoopLogger())

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, attempts)
}

func TestRetryOnTransientErrorHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	operation := func() error {
		return errors.New("connection reset by peer")
	}

	err := RetryOnTransientError(ctx, fastRetryConfig(), operation, logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTransientError(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		transient bool
	}{
		{"Nil", nil, false},
		{"Deadlock", errors.New("deadlock detected"), true},
		{"Serialization", errors.New("could not serialize access"), true},
		{"ConnectionReset", errors.New("connection reset by peer"), true},
		{"ConnectionRefused", errors.New("connection refused"), true},
		{"Timeout", errors.New("statement timeout"), true},
		{"TooManyConnections", errors.New("too many connections"), true},
		{"BrokenPipe", errors.New("write: broken pipe"), true},
		{"SyntaxError", errors.New("syntax error at or near SELECT"), false},
		{"ConstraintViolation", errors.New("violates unique constraint"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.transient, isTransientError(tc.err))
		})
	}
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0,
	}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, config))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, config))

	// Backoff is capped at MaxInterval
	assert.Equal(t, 2*time.Second, calculateBackoffWithJitter(10, config))

	// Jitter never pushes the backoff below the exponential base
	config.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(1, config)
	assert.GreaterOrEqual(t, backoff, 200*time.Millisecond)
}
