package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ctx = context.Background()

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestMemory_SetGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	c := NewMemory[[]string](WithClock[[]string](clock.Now))

	c.Set(ctx, "k", []string{"a", "b"}, time.Hour)

	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	_, ok = c.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestMemory_Expires(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	c := NewMemory[int](WithClock[int](clock.Now))

	c.Set(ctx, "k", 7, time.Hour)
	clock.Advance(59 * time.Minute)
	v, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	clock.Advance(time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemory_OverwriteResetsTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	c := NewMemory[string](WithClock[string](clock.Now))

	c.Set(ctx, "k", "old", time.Minute)
	clock.Advance(30 * time.Second)
	c.Set(ctx, "k", "new", time.Minute)
	clock.Advance(45 * time.Second)

	v, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestMemory_Purge(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	c := NewMemory[int](WithClock[int](clock.Now))

	c.Set(ctx, "short", 1, time.Minute)
	c.Set(ctx, "long", 2, time.Hour)
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 1, c.Len())

	c.Delete("long")
	assert.Equal(t, 0, c.Len())
}

func TestRedis_Key(t *testing.T) {
	r := &Redis[int]{prefix: "curator:"}
	assert.Equal(t, "curator:articles:x", r.Key("articles:x"))
}

type lockedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *lockedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *lockedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemory_CleanupLoopPurgesUnreadKeys(t *testing.T) {
	clock := &lockedClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	c := NewMemory[int](
		WithClock[int](clock.Now),
		WithCleanup[int](5*time.Millisecond),
	)
	defer c.Close()

	c.Set(ctx, "economy|5|2024-05-01T10", 1, time.Hour)
	c.Set(ctx, "science|5|2024-05-01T10", 2, 3*time.Hour)
	clock.Advance(2 * time.Hour)

	assert.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 5*time.Millisecond)

	_, ok := c.Get(ctx, "science|5|2024-05-01T10")
	assert.True(t, ok)
}

func TestMemory_CloseIsIdempotent(t *testing.T) {
	c := NewMemory[int](WithCleanup[int](time.Millisecond))
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}
