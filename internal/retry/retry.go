package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Config struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// Multiplier > 1 grows the delay exponentially; otherwise it stays constant.
	Multiplier float64
	OnRetry    func(attempt int, delay time.Duration, err error)
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent wraps err so Do stops retrying immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was wrapped with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// Do runs fn until it succeeds, returns a permanent error, attempts run out
// or ctx is done.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}

		var p *permanentError
		if errors.As(err, &p) {
			return p.err
		}

		if attempt == attempts {
			break
		}

		delay := cfg.Backoff(attempt)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("after %d attempts: %w", attempts, err)
}

// Backoff returns the delay to wait after the given failed attempt.
func (c Config) Backoff(attempt int) time.Duration {
	backoff := c.InitialBackoff
	if c.Multiplier > 1 {
		for i := 1; i < attempt; i++ {
			backoff = time.Duration(float64(backoff) * c.Multiplier)
		}
	}
	if c.MaxBackoff > 0 && backoff > c.MaxBackoff {
		backoff = c.MaxBackoff
	}
	return backoff
}
