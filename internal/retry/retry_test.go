package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	var retried []int

	err := Do(context.Background(), Config{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		OnRetry: func(attempt int, _ time.Duration, _ error) {
			retried = append(retried, attempt)
		},
	}, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := errors.New("still broken")

	err := Do(context.Background(), Config{MaxAttempts: 2, InitialBackoff: time.Millisecond}, func(context.Context) error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, 2, calls)
}

func TestDo_PermanentStopsEarly(t *testing.T) {
	calls := 0
	sentinel := errors.New("unauthorized")

	err := Do(context.Background(), Config{MaxAttempts: 5, InitialBackoff: time.Millisecond}, func(context.Context) error {
		calls++
		return Permanent(sentinel)
	})

	assert.Equal(t, sentinel, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := Do(ctx, Config{MaxAttempts: 3, InitialBackoff: time.Hour}, func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestBackoff(t *testing.T) {
	exp := Config{InitialBackoff: time.Second, MaxBackoff: 5 * time.Second, Multiplier: 2}
	assert.Equal(t, time.Second, exp.Backoff(1))
	assert.Equal(t, 2*time.Second, exp.Backoff(2))
	assert.Equal(t, 4*time.Second, exp.Backoff(3))
	assert.Equal(t, 5*time.Second, exp.Backoff(4))

	constant := Config{InitialBackoff: 3 * time.Second}
	assert.Equal(t, 3*time.Second, constant.Backoff(1))
	assert.Equal(t, 3*time.Second, constant.Backoff(4))
}

func TestPermanent_Nil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
	assert.False(t, IsPermanent(errors.New("x")))
	assert.True(t, IsPermanent(Permanent(errors.New("x"))))
}
