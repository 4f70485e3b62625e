// Package ratelimit provides a fixed-window counter store for echo's
// RateLimiter middleware, keyed by client address.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// FixedWindowStore implements echo middleware.RateLimiterStore. Each
// identifier gets limit requests per window; the counter resets when the
// window rolls over.
type FixedWindowStore struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string]*window
	now     func() time.Time
}

func NewFixedWindowStore(limit int, windowSize time.Duration) *FixedWindowStore {
	return &FixedWindowStore{
		limit:   limit,
		window:  windowSize,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (s *FixedWindowStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[identifier]
	if !ok || now.Sub(w.start) >= s.window {
		s.windows[identifier] = &window{start: now, count: 1}
		return true, nil
	}

	if w.count >= s.limit {
		return false, nil
	}
	w.count++
	return true, nil
}
