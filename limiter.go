package theseed

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum interval between requests. This is opt-in
// caller-side pacing (NamuWiki's soft limit is one request per second); it
// is unrelated to RateLimitError, whose wait hint the library never sleeps
// on. A nil *Limiter is a no-op.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewLimiter returns a limiter spacing requests at least interval apart.
// A non-positive interval disables pacing.
func NewLimiter(interval time.Duration) *Limiter {
	if interval <= 0 {
		return nil
	}
	return &Limiter{interval: interval}
}

// Wait blocks until the interval since the previous request has elapsed or
// ctx is done. Concurrent callers are serialized in arrival order at the
// mutex.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	wait := l.interval - time.Since(l.last)
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	l.last = time.Now()
	return nil
}
