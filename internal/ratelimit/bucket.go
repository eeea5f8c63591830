package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// bucketEntry holds a token bucket and its last access time for cleanup.
type bucketEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenBucketLimiter is an in-memory rate limiter backed by
// golang.org/x/time/rate. Each identity gets its own token bucket refilling
// at max requests per window, with a configurable burst. Unlike the sliding
// window it smooths admissions over time instead of counting exact requests
// per interval; it is offered as an alternative strategy for deployments
// that prefer burst-friendly behavior.
type TokenBucketLimiter struct {
	rate            rate.Limit
	burst           int
	limit           int // requests per window, for Info.Limit
	cleanupInterval time.Duration

	mu      sync.Mutex
	entries map[string]*bucketEntry
	done    chan struct{}
	closed  bool
}

// NewTokenBucketLimiter creates a token bucket limiter refilling at max
// requests per window with the given burst size. It starts a background
// goroutine that evicts idle identities every cleanupInterval.
func NewTokenBucketLimiter(window time.Duration, max int, burst int, cleanupInterval time.Duration) *TokenBucketLimiter {
	l := &TokenBucketLimiter{
		rate:            rate.Every(window / time.Duration(max)),
		burst:           burst,
		limit:           max,
		cleanupInterval: cleanupInterval,
		entries:         make(map[string]*bucketEntry),
		done:            make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks whether a request from the given identity at the given instant
// should be admitted.
func (l *TokenBucketLimiter) Allow(identity string, now time.Time) (bool, Info) {
	l.mu.Lock()
	e, exists := l.entries[identity]
	if !exists {
		e = &bucketEntry{
			limiter: rate.NewLimiter(l.rate, l.burst),
		}
		l.entries[identity] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	allowed := e.limiter.AllowN(now, 1)

	tokens := e.limiter.TokensAt(now)
	remaining := int(math.Max(0, math.Floor(tokens)))

	// Reset time: how long until the bucket is full again.
	tokensNeeded := float64(l.burst) - tokens
	resetAt := now
	if tokensNeeded > 0 {
		resetAt = now.Add(time.Duration(tokensNeeded / float64(l.rate) * float64(time.Second)))
	}

	info := Info{
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}

	if !allowed {
		// Time until the next token is available.
		reservation := e.limiter.ReserveN(now, 1)
		info.RetryAfter = reservation.DelayFrom(now)
		reservation.CancelAt(now)
	}

	return allowed, info
}

// Close stops the background cleanup goroutine.
func (l *TokenBucketLimiter) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.done)
	}
}

// cleanup periodically evicts identities that have not been seen within
// 2x the cleanup interval.
func (l *TokenBucketLimiter) cleanup() {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.evictStale()
		}
	}
}

func (l *TokenBucketLimiter) evictStale() {
	cutoff := time.Now().Add(-2 * l.cleanupInterval)
	l.mu.Lock()
	defer l.mu.Unlock()
	for identity, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, identity)
		}
	}
}
