package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsImmediatelyAndOnInterval(t *testing.T) {
	var fast, slow atomic.Int32

	s := NewScheduler(testLogger(),
		Job{Name: "fast", Interval: 20 * time.Millisecond, Run: func(ctx context.Context) error {
			fast.Add(1)
			return nil
		}},
		Job{Name: "slow", Interval: time.Hour, Run: func(ctx context.Context) error {
			slow.Add(1)
			return errors.New("boom")
		}},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, fast.Load(), int32(3))
	assert.Equal(t, int32(1), slow.Load())
}

func TestScheduler_SkipsDisabledJob(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler(testLogger(), Job{Name: "off", Run: func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)
	assert.Zero(t, calls.Load())
}

func TestScheduler_AppliesTimeout(t *testing.T) {
	s := NewScheduler(testLogger(), Job{
		Name:    "stuck",
		Timeout: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})

	err := s.Trigger(context.Background(), "stuck")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScheduler_Trigger(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	s := NewScheduler(testLogger(), Job{Name: "process", Run: func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}})

	done := make(chan error, 1)
	go func() { done <- s.Trigger(context.Background(), "process") }()
	<-started

	err := s.Trigger(context.Background(), "process")
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(release)
	require.NoError(t, <-done)

	err = s.Trigger(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownJob)
}
