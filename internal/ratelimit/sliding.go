package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindowLimiter is an in-memory sliding-window rate limiter. Each
// client identity owns an ordered sequence of admitted-request timestamps;
// every check prunes entries older than the window and counts what remains.
// This is exact per-request accounting, not a fixed-bucket approximation:
// capacity frees up continuously as old requests age out of the window.
//
// Identity entries are created lazily on first request. A background
// goroutine periodically evicts identities that have been idle for longer
// than the window, so the map does not grow without bound across clients
// that stop sending requests.
type SlidingWindowLimiter struct {
	window          time.Duration
	max             int
	cleanupInterval time.Duration

	mu      sync.Mutex
	windows map[string][]time.Time
	done    chan struct{}
	closed  bool
}

// NewSlidingWindowLimiter creates a sliding-window limiter admitting at most
// max requests per identity inside any interval of the given window. It
// starts a background goroutine that evicts idle identities every
// cleanupInterval.
func NewSlidingWindowLimiter(window time.Duration, max int, cleanupInterval time.Duration) *SlidingWindowLimiter {
	l := &SlidingWindowLimiter{
		window:          window,
		max:             max,
		cleanupInterval: cleanupInterval,
		windows:         make(map[string][]time.Time),
		done:            make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks whether a request from the given identity at the given instant
// should be admitted. The check and the record step happen under one lock,
// so they are atomic with respect to concurrent requests from the same
// identity. A rejected request leaves the recorded sequence untouched:
// repeated rejections never extend the lockout beyond the window.
func (l *SlidingWindowLimiter) Allow(identity string, now time.Time) (bool, Info) {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := prune(l.windows[identity], now, l.window)

	if len(recent) >= l.max {
		l.windows[identity] = recent

		resetAt := recent[0].Add(l.window)
		return false, Info{
			Limit:      l.max,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: resetAt.Sub(now),
		}
	}

	recent = append(recent, now)
	l.windows[identity] = recent

	return true, Info{
		Limit:     l.max,
		Remaining: l.max - len(recent),
		ResetAt:   recent[0].Add(l.window),
	}
}

// Close stops the background cleanup goroutine.
func (l *SlidingWindowLimiter) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.done)
	}
}

// prune drops timestamps that have aged out of the window ending at now.
// A timestamp exactly one window old is out: the window is half-open.
func prune(timestamps []time.Time, now time.Time, window time.Duration) []time.Time {
	recent := timestamps[:0:0]
	for _, t := range timestamps {
		if now.Sub(t) < window {
			recent = append(recent, t)
		}
	}
	return recent
}

// cleanup periodically evicts identities that have been idle longer than the
// window.
func (l *SlidingWindowLimiter) cleanup() {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.evictIdle(time.Now())
		}
	}
}

// evictIdle removes identities whose most recent request is outside the
// window. Their state is fully reconstructible (empty) so eviction never
// changes an admission decision.
func (l *SlidingWindowLimiter) evictIdle(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for identity, timestamps := range l.windows {
		if len(timestamps) == 0 || now.Sub(timestamps[len(timestamps)-1]) >= l.window {
			delete(l.windows, identity)
		}
	}
}
