package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	l := New(2, time.Minute).WithClock(func() time.Time { return now })

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "keys are independent")
	assert.Equal(t, time.Minute, l.RetryAfter("a"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("a"), "window resets")
	assert.Equal(t, time.Duration(0), l.RetryAfter("unknown"))
}

func TestLimiter_Disabled(t *testing.T) {
	l := New(0, time.Minute)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("a"))
	}
}
