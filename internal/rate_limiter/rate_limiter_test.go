package rate_limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(limit int, window time.Duration, clock *time.Time) *RateLimiter {
	rl := NewRateLimiter(limit, window)
	rl.now = func() time.Time { return *clock }
	return rl
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(2, time.Minute, &clock)
	defer rl.Close()

	assert.True(t, rl.IsAllowed("1.2.3.4"))
	assert.True(t, rl.IsAllowed("1.2.3.4"))
	assert.False(t, rl.IsAllowed("1.2.3.4"))
	assert.Equal(t, 0, rl.GetRemainingRequests("1.2.3.4"))

	assert.True(t, rl.IsAllowed("5.6.7.8"), "keys are independent")
	assert.Equal(t, 1, rl.GetRemainingRequests("5.6.7.8"))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(1, time.Minute, &clock)
	defer rl.Close()

	assert.True(t, rl.IsAllowed("k"))
	assert.Equal(t, clock.Add(time.Minute), rl.ResetAt("k"))

	clock = clock.Add(61 * time.Second)
	assert.Equal(t, 1, rl.GetRemainingRequests("k"))
	assert.True(t, rl.IsAllowed("k"))
}

func TestRateLimiter_CloseIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Close()
	rl.Close()
}
