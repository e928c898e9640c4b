package spiral

import (
	"sync"
	"time"
)

// RateLimiter allows at most Max calls within any sliding Window.
type RateLimiter struct {
	Max    int
	Window time.Duration

	mu    sync.Mutex
	calls []time.Time
	now   func() time.Time
}

// NewRateLimiter returns a limiter for max calls per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{Max: max, Window: window, now: time.Now}
}

// Allow records a call and reports whether it is within the limit.
func (l *RateLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.Window)
	drop := 0
	for drop < len(l.calls) && l.calls[drop].Before(cutoff) {
		drop++
	}
	l.calls = l.calls[drop:]

	if len(l.calls) >= l.Max {
		return false
	}
	l.calls = append(l.calls, now)
	return true
}
