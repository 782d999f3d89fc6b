package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window request counter per key. It is process-local and
// only protects expensive endpoints from bursts.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows map[string]*window
	now     func() time.Time
}

func New(limit int, period time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// WithClock replaces time.Now.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Allow consumes one slot for key. A non-positive limit disables limiting.
func (l *Limiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.sweep(now)
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}

	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// RetryAfter returns how long key has to wait for a fresh window.
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok {
		return 0
	}
	if d := w.resetAt.Sub(l.now()); d > 0 {
		return d
	}
	return 0
}

func (l *Limiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, k)
		}
	}
}
