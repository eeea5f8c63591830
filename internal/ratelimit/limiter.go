// Package ratelimit provides per-client request throttling for HTTP requests.
// The canonical implementation is a sliding-window counter that recomputes,
// at each check, the set of requests within a fixed duration ending at the
// current instant. A token bucket implementation is available as an
// alternative strategy. The package includes HTTP middleware that resolves
// the client identity and sets standard rate limit response headers.
package ratelimit

import "time"

// Limiter defines the rate limiting contract. Implementations must be safe
// for concurrent use.
//
// The current time is an explicit parameter rather than read from an ambient
// clock, so window-boundary behavior can be tested deterministically.
type Limiter interface {
	// Allow checks whether a request from the given client identity at the
	// given instant should be admitted, and records it if so. Rejected
	// requests are never recorded. Returns the decision and rate information
	// for populating response headers.
	Allow(identity string, now time.Time) (allowed bool, info Info)

	// Close stops background goroutines and releases resources.
	Close()
}

// Info contains rate limit state for populating response headers.
type Info struct {
	Limit      int           // Admission ceiling per window
	Remaining  int           // Requests left in the current window
	ResetAt    time.Time     // When the oldest recorded request leaves the window
	RetryAfter time.Duration // How long to wait (meaningful only when denied)
}
