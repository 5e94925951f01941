package rate_limiter

import (
	"sync"
	"time"
)

// RateLimiter is a sliding window counter keyed by client.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Close stops the background cleanup.
func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) Limit() int {
	return rl.limit
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key := range rl.requests {
				if rl.pruneLocked(key) == 0 {
					delete(rl.requests, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// pruneLocked drops hits older than the window and returns what is left.
func (rl *RateLimiter) pruneLocked(key string) int {
	windowStart := rl.now().Add(-rl.window)
	times := rl.requests[key]
	valid := times[:0]
	for _, t := range times {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	rl.requests[key] = valid
	return len(valid)
}

// IsAllowed records a hit for key unless the window is already full.
func (rl *RateLimiter) IsAllowed(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.pruneLocked(key) >= rl.limit {
		return false
	}

	rl.requests[key] = append(rl.requests[key], rl.now())
	return true
}

func (rl *RateLimiter) GetRemainingRequests(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	remaining := rl.limit - rl.pruneLocked(key)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResetAt is when the oldest hit in the window expires.
func (rl *RateLimiter) ResetAt(key string) time.Time {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.pruneLocked(key) == 0 {
		return rl.now()
	}
	return rl.requests[key][0].Add(rl.window)
}
